package engine

import "math"

// DisparityBand classifies a regional disparity for display. The cut points
// come from the case material: above 20pp the gap suggests disparate impact,
// above 10pp it warrants monitoring.
type DisparityBand string

const (
	BandLow      DisparityBand = "low"
	BandModerate DisparityBand = "moderate"
	BandHigh     DisparityBand = "high"
)

// Disparity returns the fairness spread: the gap in percentage points
// between the highest and lowest regional flagging rate.
func Disparity(m Metrics) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, rr := range m.Regions {
		if rr.RatePct < lo {
			lo = rr.RatePct
		}
		if rr.RatePct > hi {
			hi = rr.RatePct
		}
	}
	if len(m.Regions) == 0 {
		return 0
	}
	return hi - lo
}

// BandFor maps a disparity in percentage points to its band.
func BandFor(spreadPP float64) DisparityBand {
	switch {
	case spreadPP > 20:
		return BandHigh
	case spreadPP > 10:
		return BandModerate
	default:
		return BandLow
	}
}
