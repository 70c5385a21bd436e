package scoring

import (
	"fmt"

	"github.com/meridian-analytics/tradeoff/internal/engine"
	"github.com/meridian-analytics/tradeoff/internal/exhibit"
)

// Perspectives is the neutral per-stakeholder narrative for one threshold:
// factual comparisons against each stakeholder's preferred operating point,
// with no status indicators or recommendations.
type Perspectives struct {
	Threshold float64              `json:"threshold"`
	CFO       CFOPerspective       `json:"cfo"`
	CSO       CSOPerspective       `json:"cso"`
	Relations RelationsPerspective `json:"relations"`
	Counsel   CounselPerspective   `json:"counsel"`
}

// CFOPerspective compares the current annual cost against the cost at the
// CFO's preferred (lowest) threshold.
type CFOPerspective struct {
	Name               string  `json:"name"`
	Role               string  `json:"role"`
	Focus              string  `json:"focus"`
	PreferredThreshold float64 `json:"preferred_threshold"`
	PreferredCost      float64 `json:"preferred_cost_millions"`
	CurrentCost        float64 `json:"current_cost_millions"`
	CostGap            float64 `json:"cost_gap_millions"`
	CostGapPct         float64 `json:"cost_gap_pct"`
	Quote              string  `json:"quote"`
}

// CSOPerspective compares missed risks against the CSO's preferred
// (highest) threshold.
type CSOPerspective struct {
	Name               string  `json:"name"`
	Role               string  `json:"role"`
	Focus              string  `json:"focus"`
	PreferredThreshold float64 `json:"preferred_threshold"`
	PreferredFN        int     `json:"preferred_false_negatives"`
	CurrentFN          int     `json:"current_false_negatives"`
	FNGap              int     `json:"fn_gap"`
	FNGapPct           float64 `json:"fn_gap_pct"`
	Quote              string  `json:"quote"`
}

// RelationsPerspective states the review burden placed on suppliers.
type RelationsPerspective struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Focus      string  `json:"focus"`
	FlaggedPct float64 `json:"flagged_pct"`
	Flagged    int     `json:"flagged"`
	Quote      string  `json:"quote"`
}

// CounselPerspective states regional disparity with per-region rates and
// small-sample caution flags.
type CounselPerspective struct {
	Name        string               `json:"name"`
	Role        string               `json:"role"`
	Focus       string               `json:"focus"`
	DisparityPP float64              `json:"disparity_pp"`
	Band        engine.DisparityBand `json:"band"`
	Regions     []RegionView         `json:"regions"`
	Quote       string               `json:"quote"`
}

// RegionView is one region's rate as shown to counsel. SmallSample marks
// cohorts below the sample floor whose rates are statistically unreliable.
type RegionView struct {
	Name        string  `json:"name"`
	RatePct     float64 `json:"rate_pct"`
	SampleSize  int     `json:"sample_size"`
	SmallSample bool    `json:"small_sample"`
}

// BuildPerspectives assembles the stakeholder narrative for an already
// computed metrics result. The CFO's preferred point is the table's lowest
// threshold, the CSO's its highest; their reference values come from the
// table itself rather than hardcoded case numbers. sampleFloor marks regions
// whose cohort is too small to trust.
func BuildPerspectives(table *exhibit.Table, m engine.Metrics, sampleFloor int) (Perspectives, error) {
	low, err := engine.Interpolate(table, table.MinThreshold())
	if err != nil {
		return Perspectives{}, fmt.Errorf("compute cfo reference: %w", err)
	}
	high, err := engine.Interpolate(table, table.MaxThreshold())
	if err != nil {
		return Perspectives{}, fmt.Errorf("compute cso reference: %w", err)
	}

	costGap := m.CostMillions - low.CostMillions
	costGapPct := 0.0
	if low.CostMillions > 0 {
		costGapPct = costGap / low.CostMillions * 100
	}

	fnGap := m.FalseNegatives - high.FalseNegatives
	fnGapPct := 0.0
	if high.FalseNegatives > 0 {
		fnGapPct = float64(fnGap) / float64(high.FalseNegatives) * 100
	}

	disparity := engine.Disparity(m)

	regions := make([]RegionView, 0, len(table.RegionNames))
	for _, name := range table.RegionNames {
		rr := m.Regions[name]
		regions = append(regions, RegionView{
			Name:        name,
			RatePct:     rr.RatePct,
			SampleSize:  rr.SampleSize,
			SmallSample: rr.SampleSize < sampleFloor,
		})
	}

	return Perspectives{
		Threshold: m.Threshold,
		CFO: CFOPerspective{
			Name:               "Hans Verhoeven",
			Role:               "CFO",
			Focus:              "Cost Minimization",
			PreferredThreshold: low.Threshold,
			PreferredCost:      low.CostMillions,
			CurrentCost:        m.CostMillions,
			CostGap:            costGap,
			CostGapPct:         costGapPct,
			Quote:              "I prefer closer to the $4-5M range we discussed. Have you considered the lower threshold?",
		},
		CSO: CSOPerspective{
			Name:               "Dr. Amelia Okonkwo",
			Role:               "CSO",
			Focus:              "Risk Mitigation",
			PreferredThreshold: high.Threshold,
			PreferredFN:        high.FalseNegatives,
			CurrentFN:          m.FalseNegatives,
			FNGap:              fnGap,
			FNGapPct:           fnGapPct,
			Quote:              "When we miss problematic suppliers and that becomes a front-page story, what's the cost to our brand? I'd push higher to catch more.",
		},
		Relations: RelationsPerspective{
			Name:       "James Park",
			Role:       "Supplier Relations",
			Focus:      "Partnership",
			FlaggedPct: m.FlaggedPct,
			Flagged:    m.Flagged,
			Quote: fmt.Sprintf("We've spent five years building collaborative relationships. Flagging %.0f%% of suppliers sends a message about the partnership approach.",
				m.FlaggedPct),
		},
		Counsel: CounselPerspective{
			Name:        "Lisa Martinez",
			Role:        "General Counsel",
			Focus:       "Fairness",
			DisparityPP: disparity,
			Band:        engine.BandFor(disparity),
			Regions:     regions,
			Quote:       "If the model systematically flags certain regions at higher rates because of training data limitations, we have both a legal risk and an ethical problem.",
		},
	}, nil
}
