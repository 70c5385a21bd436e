package exhibit

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ThresholdTolerance is the absolute tolerance under which two threshold
// values are considered the same table row. Validation rejects rows spaced
// closer than this; the engine uses the same tolerance for exact-match
// lookups.
const ThresholdTolerance = 1e-9

// ConfigurationError reports a malformed exhibit table: too few rows,
// non-monotonic or duplicate thresholds, inconsistent regional data. It is
// a startup-fatal condition surfaced by Load before any computation runs,
// never a per-call failure.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "exhibit configuration: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// RegionRate is the flagging rate observed for one region at one threshold,
// together with the number of suppliers the rate was measured over.
type RegionRate struct {
	RatePct    float64 `yaml:"rate_pct" json:"rate_pct"`
	SampleSize int     `yaml:"sample_size" json:"sample_size"`
}

// ReferencePoint is one row of the exhibit: the precomputed operating point
// for a single standard threshold. Regional rates may be absent on rows where
// the exhibit provides no regional breakdown; they are carried on a coarser
// grid than the headline metrics.
type ReferencePoint struct {
	Threshold      float64               `yaml:"threshold" json:"threshold"`
	Flagged        int                   `yaml:"flagged" json:"flagged"`
	FlaggedPct     float64               `yaml:"flagged_pct" json:"flagged_pct"`
	CostMillions   float64               `yaml:"cost_millions" json:"cost_millions"`
	FalsePositives int                   `yaml:"false_positives" json:"false_positives"`
	FalseNegatives int                   `yaml:"false_negatives" json:"false_negatives"`
	AccuracyPct    float64               `yaml:"accuracy_pct" json:"accuracy_pct"`
	Regions        map[string]RegionRate `yaml:"regions,omitempty" json:"regions,omitempty"`
}

// Table is the full exhibit: an ordered set of reference points plus the
// region roster. It is built once at startup, validated, and never mutated;
// every computation receives it read-only.
type Table struct {
	Points         []ReferencePoint `yaml:"points" json:"points"`
	RegionNames    []string         `yaml:"regions" json:"regions"`
	TotalSuppliers int              `yaml:"total_suppliers" json:"total_suppliers"`
}

// MinThreshold returns the lower bound of the selectable domain.
func (t *Table) MinThreshold() float64 {
	return t.Points[0].Threshold
}

// MaxThreshold returns the upper bound of the selectable domain.
func (t *Table) MaxThreshold() float64 {
	return t.Points[len(t.Points)-1].Threshold
}

// RegionalPoints returns the subset of points that carry a regional
// breakdown, in threshold order.
func (t *Table) RegionalPoints() []ReferencePoint {
	var out []ReferencePoint
	for _, p := range t.Points {
		if len(p.Regions) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the structural invariants the engine assumes: at least two
// points, strictly increasing thresholds spaced wider than the exact-match
// tolerance, non-negative values, and a regional breakdown on at least the
// first and last points so regional rates never need extrapolation. Every
// failure is a *ConfigurationError.
func (t *Table) Validate() error {
	if len(t.Points) < 2 {
		return configErrorf("exhibit needs at least 2 reference points, got %d", len(t.Points))
	}
	if t.TotalSuppliers <= 0 {
		return configErrorf("total_suppliers must be positive, got %d", t.TotalSuppliers)
	}
	if len(t.RegionNames) == 0 {
		return configErrorf("exhibit declares no regions")
	}
	for i, p := range t.Points {
		if i > 0 {
			prev := t.Points[i-1].Threshold
			if p.Threshold <= prev {
				return configErrorf("thresholds must be strictly increasing: %.4f follows %.4f",
					p.Threshold, prev)
			}
			if p.Threshold-prev <= ThresholdTolerance {
				return configErrorf("thresholds %.12f and %.12f are closer than the exact-match tolerance",
					prev, p.Threshold)
			}
		}
		if p.Flagged < 0 || p.FalsePositives < 0 || p.FalseNegatives < 0 {
			return configErrorf("negative count at threshold %.2f", p.Threshold)
		}
		if p.CostMillions < 0 {
			return configErrorf("negative cost at threshold %.2f", p.Threshold)
		}
		if err := t.validateRegions(p); err != nil {
			return err
		}
	}
	if len(t.Points[0].Regions) == 0 {
		return configErrorf("first reference point (%.2f) has no regional breakdown", t.Points[0].Threshold)
	}
	if len(t.Points[len(t.Points)-1].Regions) == 0 {
		return configErrorf("last reference point (%.2f) has no regional breakdown", t.MaxThreshold())
	}
	return nil
}

func (t *Table) validateRegions(p ReferencePoint) error {
	if len(p.Regions) == 0 {
		return nil
	}
	if len(p.Regions) != len(t.RegionNames) {
		return configErrorf("threshold %.2f has %d regions, exhibit declares %d",
			p.Threshold, len(p.Regions), len(t.RegionNames))
	}
	for _, name := range t.RegionNames {
		rr, ok := p.Regions[name]
		if !ok {
			return configErrorf("threshold %.2f missing region %q", p.Threshold, name)
		}
		if rr.RatePct < 0 || rr.RatePct > 100 {
			return configErrorf("region %q rate %.1f%% at threshold %.2f out of [0,100]",
				name, rr.RatePct, p.Threshold)
		}
		if rr.SampleSize <= 0 {
			return configErrorf("region %q has non-positive sample size at threshold %.2f",
				name, p.Threshold)
		}
	}
	return nil
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Width returns Max-Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// Ranges holds the per-field min/max over the whole table. Score
// normalization uses these so scores stay comparable across threshold
// selections within one table.
type Ranges struct {
	Cost           Range `json:"cost"`
	FalsePositives Range `json:"false_positives"`
	FalseNegatives Range `json:"false_negatives"`
	FlaggedPct     Range `json:"flagged_pct"`
	Disparity      Range `json:"disparity"`
}

// Ranges derives the normalization ranges from the full table. Disparity is
// computed at each point that carries a regional breakdown.
func (t *Table) Ranges() Ranges {
	r := Ranges{
		Cost:           Range{Min: math.Inf(1), Max: math.Inf(-1)},
		FalsePositives: Range{Min: math.Inf(1), Max: math.Inf(-1)},
		FalseNegatives: Range{Min: math.Inf(1), Max: math.Inf(-1)},
		FlaggedPct:     Range{Min: math.Inf(1), Max: math.Inf(-1)},
		Disparity:      Range{Min: math.Inf(1), Max: math.Inf(-1)},
	}
	for _, p := range t.Points {
		r.Cost = r.Cost.extend(p.CostMillions)
		r.FalsePositives = r.FalsePositives.extend(float64(p.FalsePositives))
		r.FalseNegatives = r.FalseNegatives.extend(float64(p.FalseNegatives))
		r.FlaggedPct = r.FlaggedPct.extend(p.FlaggedPct)
		if len(p.Regions) > 0 {
			r.Disparity = r.Disparity.extend(regionSpread(p.Regions))
		}
	}
	return r
}

func (r Range) extend(v float64) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

func regionSpread(regions map[string]RegionRate) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, rr := range regions {
		if rr.RatePct < lo {
			lo = rr.RatePct
		}
		if rr.RatePct > hi {
			hi = rr.RatePct
		}
	}
	return hi - lo
}

// Load reads an exhibit table from a YAML file and validates it. An empty
// path returns the embedded default case data.
func Load(path string) (*Table, error) {
	t := DefaultTable()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read exhibit: %w", err)
		}
		t = &Table{}
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, fmt.Errorf("parse exhibit: %w", err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid exhibit: %w", err)
	}
	return t, nil
}
