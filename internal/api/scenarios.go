package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/meridian-analytics/tradeoff/internal/engine"
	"github.com/meridian-analytics/tradeoff/internal/exhibit"
	"github.com/meridian-analytics/tradeoff/internal/scenario"
	"github.com/meridian-analytics/tradeoff/internal/scoring"
)

type ScenariosHandler struct {
	store  scenario.Store
	table  *exhibit.Table
	scorer *scoring.Scorer
}

func NewScenariosHandler(s scenario.Store, table *exhibit.Table, scorer *scoring.Scorer) *ScenariosHandler {
	return &ScenariosHandler{store: s, table: table, scorer: scorer}
}

type CreateScenarioRequest struct {
	Label     string  `json:"label"`
	Threshold float64 `json:"threshold"`
}

// Create bookmarks a threshold: metrics and scorecard are computed once at
// save time and frozen on the scenario.
func (h *ScenariosHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Label == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "label required"})
		return
	}

	m, err := engine.Interpolate(h.table, req.Threshold)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	s := &scenario.Scenario{
		Label:     req.Label,
		Threshold: req.Threshold,
		Metrics:   m,
		Scorecard: h.scorer.Score(m),
	}
	if err := h.store.Save(r.Context(), s); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

func (h *ScenariosHandler) List(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.store.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if scenarios == nil {
		scenarios = []*scenario.Scenario{}
	}
	writeJSON(w, http.StatusOK, scenarios)
}

func (h *ScenariosHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid scenario id"})
		return
	}
	s, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if s == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "scenario not found"})
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *ScenariosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid scenario id"})
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
