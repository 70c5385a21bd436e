package scoring

import (
	"fmt"

	"github.com/meridian-analytics/tradeoff/internal/engine"
	"github.com/meridian-analytics/tradeoff/internal/exhibit"
)

// ScoreResult captures one stakeholder's score on the 0–10 scale.
type ScoreResult struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// neutralScore is returned whenever a normalization range has zero width
// (every table row identical on that field); there is nothing to rank, so
// the score sits in the middle of the scale instead of dividing by zero.
const neutralScore = 5.0

// CFOScore decreases with annual cost, normalized on the table's cost range.
// The cheapest operating point in the table scores 10.
func CFOScore(m engine.Metrics, ranges exhibit.Ranges) ScoreResult {
	return ScoreResult{
		Name:   "cfo",
		Score:  inverted10(m.CostMillions, ranges.Cost),
		Reason: fmt.Sprintf("annual cost $%.1fM", m.CostMillions),
	}
}

// CSOScore decreases with false negatives, normalized on the table's range.
// Fewer missed risks means a higher score.
func CSOScore(m engine.Metrics, ranges exhibit.Ranges) ScoreResult {
	return ScoreResult{
		Name:   "cso",
		Score:  inverted10(float64(m.FalseNegatives), ranges.FalseNegatives),
		Reason: fmt.Sprintf("%d missed risks", m.FalseNegatives),
	}
}

// RelationsScore decreases with both false positives and the flagged
// percentage: each unnecessary review and each flagged supplier strains the
// partnership. The two subscores are averaged.
func RelationsScore(m engine.Metrics, ranges exhibit.Ranges) ScoreResult {
	fp := inverted10(float64(m.FalsePositives), ranges.FalsePositives)
	burden := inverted10(m.FlaggedPct, ranges.FlaggedPct)
	return ScoreResult{
		Name:   "supplier_relations",
		Score:  (fp + burden) / 2,
		Reason: fmt.Sprintf("%d false positives, %.1f%% flagged", m.FalsePositives, m.FlaggedPct),
	}
}

// FairnessScore decreases with the regional disparity (max−min flagging
// rate), normalized on the disparity range observed across the table's
// regional grid points.
func FairnessScore(m engine.Metrics, ranges exhibit.Ranges) ScoreResult {
	spread := engine.Disparity(m)
	return ScoreResult{
		Name:   "fairness",
		Score:  inverted10(spread, ranges.Disparity),
		Reason: fmt.Sprintf("%.1fpp regional spread", spread),
	}
}

// inverted10 maps v onto [0,10] with the range minimum scoring 10 and the
// range maximum scoring 0. A zero-width range yields the neutral score.
func inverted10(v float64, r exhibit.Range) float64 {
	if r.Width() <= 0 {
		return neutralScore
	}
	return clamp(10*(r.Max-v)/r.Width(), 0, 10)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
