package scoring

import (
	"github.com/meridian-analytics/tradeoff/internal/engine"
	"github.com/meridian-analytics/tradeoff/internal/exhibit"
)

// Scorecard is the complete stakeholder view for one threshold: four scores
// on the 0–10 scale plus their arithmetic mean as the balance score.
type Scorecard struct {
	Threshold         float64     `json:"threshold"`
	CFO               ScoreResult `json:"cfo"`
	CSO               ScoreResult `json:"cso"`
	SupplierRelations ScoreResult `json:"supplier_relations"`
	Fairness          ScoreResult `json:"fairness"`
	Balance           float64     `json:"balance"`
}

// Scorer computes stakeholder scorecards against normalization ranges
// derived once from the full exhibit table, so scores stay comparable
// across threshold selections.
type Scorer struct {
	ranges exhibit.Ranges
}

// NewScorer derives the normalization ranges from the table.
func NewScorer(table *exhibit.Table) *Scorer {
	return &Scorer{ranges: table.Ranges()}
}

// Score computes the four stakeholder scores and their balance for one
// metrics result. Pure: same metrics always yield the same scorecard.
func (s *Scorer) Score(m engine.Metrics) Scorecard {
	cfo := CFOScore(m, s.ranges)
	cso := CSOScore(m, s.ranges)
	rel := RelationsScore(m, s.ranges)
	fair := FairnessScore(m, s.ranges)

	return Scorecard{
		Threshold:         m.Threshold,
		CFO:               cfo,
		CSO:               cso,
		SupplierRelations: rel,
		Fairness:          fair,
		Balance:           (cfo.Score + cso.Score + rel.Score + fair.Score) / 4,
	}
}

// Ranges exposes the normalization ranges the scorer was built with.
func (s *Scorer) Ranges() exhibit.Ranges {
	return s.ranges
}
