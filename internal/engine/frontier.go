package engine

import "github.com/meridian-analytics/tradeoff/internal/exhibit"

// FrontierPoint is one standard threshold scored on the three dimensions
// decision-makers trade off: annual cost, missed risks, and regional
// disparity. Lower is better on all three.
type FrontierPoint struct {
	Threshold      float64 `json:"threshold"`
	CostMillions   float64 `json:"cost_millions"`
	FalseNegatives int     `json:"false_negatives"`
	DisparityPP    float64 `json:"disparity_pp"`
}

// Frontier returns the Pareto-optimal standard thresholds: those not
// dominated by any other table row on cost, false negatives, and disparity
// simultaneously. O(n^2) dominance check — exhibit tables are tiny.
func Frontier(table *exhibit.Table) []FrontierPoint {
	points := make([]FrontierPoint, 0, len(table.Points))
	for _, p := range table.Points {
		m, err := Interpolate(table, p.Threshold)
		if err != nil {
			continue
		}
		points = append(points, FrontierPoint{
			Threshold:      p.Threshold,
			CostMillions:   m.CostMillions,
			FalseNegatives: m.FalseNegatives,
			DisparityPP:    Disparity(m),
		})
	}

	var frontier []FrontierPoint
	for i := range points {
		dominated := false
		for j := range points {
			if i != j && dominates(points[j], points[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, points[i])
		}
	}
	return frontier
}

// dominates returns true if a is at least as good as b on every dimension
// and strictly better on at least one. Lower is better throughout.
func dominates(a, b FrontierPoint) bool {
	if a.CostMillions > b.CostMillions || a.FalseNegatives > b.FalseNegatives || a.DisparityPP > b.DisparityPP {
		return false
	}
	return a.CostMillions < b.CostMillions || a.FalseNegatives < b.FalseNegatives || a.DisparityPP < b.DisparityPP
}
