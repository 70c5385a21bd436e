package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/meridian-analytics/tradeoff/internal/engine"
	"github.com/meridian-analytics/tradeoff/internal/exhibit"
	"github.com/meridian-analytics/tradeoff/internal/scoring"
)

// ThresholdsHandler serves the read-only threshold exploration endpoints.
// Out-of-domain thresholds are rejected with 400; clamping is left to
// clients.
type ThresholdsHandler struct {
	table        *exhibit.Table
	scorer       *scoring.Scorer
	refThreshold float64
	sampleFloor  int
}

func NewThresholdsHandler(table *exhibit.Table, scorer *scoring.Scorer, refThreshold float64, sampleFloor int) *ThresholdsHandler {
	return &ThresholdsHandler{
		table:        table,
		scorer:       scorer,
		refThreshold: refThreshold,
		sampleFloor:  sampleFloor,
	}
}

// MetricsResponse augments the interpolated metrics with the regional
// disparity and its display band.
type MetricsResponse struct {
	engine.Metrics
	DisparityPP   float64              `json:"disparity_pp"`
	DisparityBand engine.DisparityBand `json:"disparity_band"`
}

// Metrics returns the interpolated metrics for one threshold.
// GET /api/v1/metrics?threshold=0.55
func (h *ThresholdsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	threshold, ok := h.thresholdParam(w, r)
	if !ok {
		return
	}
	m, err := engine.Interpolate(h.table, threshold)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	spread := engine.Disparity(m)
	writeJSON(w, http.StatusOK, MetricsResponse{
		Metrics:       m,
		DisparityPP:   spread,
		DisparityBand: engine.BandFor(spread),
	})
}

// Scores returns the stakeholder scorecard for one threshold.
// GET /api/v1/scores?threshold=0.55
func (h *ThresholdsHandler) Scores(w http.ResponseWriter, r *http.Request) {
	threshold, ok := h.thresholdParam(w, r)
	if !ok {
		return
	}
	m, err := engine.Interpolate(h.table, threshold)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.scorer.Score(m))
}

// Perspectives returns the neutral stakeholder narrative for one threshold.
// GET /api/v1/perspectives?threshold=0.55
func (h *ThresholdsHandler) Perspectives(w http.ResponseWriter, r *http.Request) {
	threshold, ok := h.thresholdParam(w, r)
	if !ok {
		return
	}
	m, err := engine.Interpolate(h.table, threshold)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	p, err := scoring.BuildPerspectives(h.table, m, h.sampleFloor)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delta returns metric deltas vs a reference threshold. The reference
// defaults to the configured comparison point.
// GET /api/v1/delta?threshold=0.55&reference=0.60
func (h *ThresholdsHandler) Delta(w http.ResponseWriter, r *http.Request) {
	threshold, ok := h.thresholdParam(w, r)
	if !ok {
		return
	}
	reference := h.refThreshold
	if v := r.URL.Query().Get("reference"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reference"})
			return
		}
		reference = f
	}
	d, err := engine.DeltaVsReference(h.table, threshold, reference)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// CurvePoint is one sample of the trade-off curves.
type CurvePoint struct {
	engine.Metrics
	DisparityPP float64 `json:"disparity_pp"`
}

// Curve returns chart-ready series data: metrics at every table point, or at
// samples+1 evenly spaced thresholds across the domain when samples >= 2.
// GET /api/v1/curve?samples=40
func (h *ThresholdsHandler) Curve(w http.ResponseWriter, r *http.Request) {
	samples := 0
	if v := r.URL.Query().Get("samples"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 1000 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid samples"})
			return
		}
		samples = n
	}

	var thresholds []float64
	if samples >= 2 {
		min, max := h.table.MinThreshold(), h.table.MaxThreshold()
		step := (max - min) / float64(samples)
		for i := 0; i <= samples; i++ {
			thresholds = append(thresholds, min+float64(i)*step)
		}
	} else {
		for _, p := range h.table.Points {
			thresholds = append(thresholds, p.Threshold)
		}
	}

	curve := make([]CurvePoint, 0, len(thresholds))
	for _, t := range thresholds {
		m, err := engine.Interpolate(h.table, t)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		curve = append(curve, CurvePoint{Metrics: m, DisparityPP: engine.Disparity(m)})
	}
	writeJSON(w, http.StatusOK, curve)
}

// Frontier returns the Pareto-optimal standard thresholds.
// GET /api/v1/frontier
func (h *ThresholdsHandler) Frontier(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, engine.Frontier(h.table))
}

func (h *ThresholdsHandler) thresholdParam(w http.ResponseWriter, r *http.Request) (float64, bool) {
	v := r.URL.Query().Get("threshold")
	if v == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "threshold required"})
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid threshold"})
		return 0, false
	}
	return f, true
}

func writeEngineError(w http.ResponseWriter, err error) {
	var domainErr *engine.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": domainErr.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
