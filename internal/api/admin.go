package api

import (
	"net/http"

	"github.com/meridian-analytics/tradeoff/internal/exhibit"
	"github.com/meridian-analytics/tradeoff/internal/scoring"
)

type AdminHandler struct {
	table  *exhibit.Table
	scorer *scoring.Scorer
}

func NewAdminHandler(table *exhibit.Table, scorer *scoring.Scorer) *AdminHandler {
	return &AdminHandler{table: table, scorer: scorer}
}

// Exhibit returns the raw reference table together with the normalization
// ranges derived from it.
// GET /api/v1/admin/exhibit
func (h *AdminHandler) Exhibit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"table":  h.table,
		"ranges": h.scorer.Ranges(),
	})
}
