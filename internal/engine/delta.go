package engine

import "github.com/meridian-analytics/tradeoff/internal/exhibit"

// Delta is the change in each headline metric relative to a reference
// threshold. Positive values mean the queried threshold is higher on that
// metric than the reference.
type Delta struct {
	Threshold      float64 `json:"threshold"`
	Reference      float64 `json:"reference"`
	Flagged        int     `json:"flagged"`
	FlaggedPct     float64 `json:"flagged_pct"`
	CostMillions   float64 `json:"cost_millions"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	AccuracyPct    float64 `json:"accuracy_pct"`
}

// DeltaVsReference computes metrics at both thresholds and returns their
// difference. Either threshold being out of domain fails with *DomainError.
func DeltaVsReference(table *exhibit.Table, threshold, reference float64) (Delta, error) {
	cur, err := Interpolate(table, threshold)
	if err != nil {
		return Delta{}, err
	}
	ref, err := Interpolate(table, reference)
	if err != nil {
		return Delta{}, err
	}
	return Delta{
		Threshold:      threshold,
		Reference:      reference,
		Flagged:        cur.Flagged - ref.Flagged,
		FlaggedPct:     cur.FlaggedPct - ref.FlaggedPct,
		CostMillions:   cur.CostMillions - ref.CostMillions,
		FalsePositives: cur.FalsePositives - ref.FalsePositives,
		FalseNegatives: cur.FalseNegatives - ref.FalseNegatives,
		AccuracyPct:    cur.AccuracyPct - ref.AccuracyPct,
	}, nil
}
