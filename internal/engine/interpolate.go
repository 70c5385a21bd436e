package engine

import (
	"math"

	"github.com/meridian-analytics/tradeoff/internal/exhibit"
)

// Metrics is the complete derived view for one threshold. Fields mirror a
// reference point; when the threshold falls strictly between two table rows
// they are linearly interpolated and Interpolated is true. Regional rates
// are always resolved against the (possibly coarser) regional grid.
type Metrics struct {
	Threshold      float64                       `json:"threshold"`
	Flagged        int                           `json:"flagged"`
	FlaggedPct     float64                       `json:"flagged_pct"`
	CostMillions   float64                       `json:"cost_millions"`
	FalsePositives int                           `json:"false_positives"`
	FalseNegatives int                           `json:"false_negatives"`
	AccuracyPct    float64                       `json:"accuracy_pct"`
	Regions        map[string]exhibit.RegionRate `json:"regions"`
	Interpolated   bool                          `json:"is_interpolated"`
}

// Interpolate computes the metrics for an arbitrary threshold against a
// validated exhibit table. Pure and deterministic: identical inputs yield
// identical outputs, no side effects, no logging.
//
// A threshold matching a table row (within tolerance) returns that row's
// values verbatim with Interpolated=false. A threshold strictly between two
// rows is linearly interpolated; integer counts are rounded once, after
// interpolation. A threshold outside the table domain fails with
// *DomainError — no extrapolation policy exists.
func Interpolate(table *exhibit.Table, threshold float64) (Metrics, error) {
	min, max := table.MinThreshold(), table.MaxThreshold()
	if threshold < min-exhibit.ThresholdTolerance || threshold > max+exhibit.ThresholdTolerance {
		return Metrics{}, &DomainError{Threshold: threshold, Min: min, Max: max}
	}

	m := Metrics{Threshold: threshold}

	if p, ok := exactPoint(table.Points, threshold); ok {
		m.Flagged = p.Flagged
		m.FlaggedPct = p.FlaggedPct
		m.CostMillions = p.CostMillions
		m.FalsePositives = p.FalsePositives
		m.FalseNegatives = p.FalseNegatives
		m.AccuracyPct = p.AccuracyPct
	} else {
		lo, hi := bracket(table.Points, threshold)
		t := (threshold - lo.Threshold) / (hi.Threshold - lo.Threshold)
		m.FlaggedPct = lerp(lo.FlaggedPct, hi.FlaggedPct, t)
		m.CostMillions = lerp(lo.CostMillions, hi.CostMillions, t)
		m.AccuracyPct = lerp(lo.AccuracyPct, hi.AccuracyPct, t)
		m.Flagged = roundCount(lerp(float64(lo.Flagged), float64(hi.Flagged), t))
		m.FalsePositives = roundCount(lerp(float64(lo.FalsePositives), float64(hi.FalsePositives), t))
		m.FalseNegatives = roundCount(lerp(float64(lo.FalseNegatives), float64(hi.FalseNegatives), t))
		m.Interpolated = true
	}

	m.Regions = regionRates(table, threshold)
	return m, nil
}

// regionRates resolves per-region flagging rates for a threshold already
// known to be in-domain. Rates interpolate linearly over the regional grid;
// sample sizes are never interpolated — the smaller of the two bracketing
// sample sizes is propagated so small-sample warnings stay conservative.
func regionRates(table *exhibit.Table, threshold float64) map[string]exhibit.RegionRate {
	grid := table.RegionalPoints()

	if p, ok := exactPoint(grid, threshold); ok {
		out := make(map[string]exhibit.RegionRate, len(p.Regions))
		for name, rr := range p.Regions {
			out[name] = rr
		}
		return out
	}

	lo, hi := bracket(grid, threshold)
	t := (threshold - lo.Threshold) / (hi.Threshold - lo.Threshold)
	out := make(map[string]exhibit.RegionRate, len(table.RegionNames))
	for _, name := range table.RegionNames {
		lr, hr := lo.Regions[name], hi.Regions[name]
		n := lr.SampleSize
		if hr.SampleSize < n {
			n = hr.SampleSize
		}
		out[name] = exhibit.RegionRate{
			RatePct:    lerp(lr.RatePct, hr.RatePct, t),
			SampleSize: n,
		}
	}
	return out
}

func exactPoint(points []exhibit.ReferencePoint, threshold float64) (exhibit.ReferencePoint, bool) {
	for _, p := range points {
		if math.Abs(p.Threshold-threshold) <= exhibit.ThresholdTolerance {
			return p, true
		}
	}
	return exhibit.ReferencePoint{}, false
}

// bracket returns the two points enclosing threshold. Callers guarantee the
// threshold is in-domain and not an exact match, so a bracket always exists.
func bracket(points []exhibit.ReferencePoint, threshold float64) (lo, hi exhibit.ReferencePoint) {
	for i := 0; i < len(points)-1; i++ {
		if threshold >= points[i].Threshold && threshold <= points[i+1].Threshold {
			return points[i], points[i+1]
		}
	}
	// Only reachable for thresholds within tolerance of the domain edges.
	if threshold < points[0].Threshold {
		return points[0], points[1]
	}
	return points[len(points)-2], points[len(points)-1]
}

func lerp(lo, hi, t float64) float64 {
	return lo + t*(hi-lo)
}

// roundCount rounds an interpolated count to the nearest integer, half away
// from zero. Rounding happens once, at the end, so error never compounds.
func roundCount(v float64) int {
	return int(math.Round(v))
}
