package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meridian-analytics/tradeoff/internal/exhibit"
	"github.com/meridian-analytics/tradeoff/internal/scenario"
	"github.com/meridian-analytics/tradeoff/internal/scoring"
)

// MockStore implements scenario.Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, s *scenario.Scenario) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, id uuid.UUID) (*scenario.Scenario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scenario.Scenario), args.Error(1)
}

func (m *MockStore) List(ctx context.Context) ([]*scenario.Scenario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*scenario.Scenario), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newScenariosHandler(store scenario.Store) *ScenariosHandler {
	table := exhibit.DefaultTable()
	return NewScenariosHandler(store, table, scoring.NewScorer(table))
}

func TestScenarioCreate(t *testing.T) {
	h := newScenariosHandler(scenario.NewMemoryStore())

	body, _ := json.Marshal(CreateScenarioRequest{Label: "balanced", Threshold: 0.60})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scenarios", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var s scenario.Scenario
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, "balanced", s.Label)
	assert.Equal(t, 861, s.Metrics.Flagged)
	assert.False(t, s.Metrics.Interpolated)
	assert.InDelta(t, s.Scorecard.Balance,
		(s.Scorecard.CFO.Score+s.Scorecard.CSO.Score+s.Scorecard.SupplierRelations.Score+s.Scorecard.Fairness.Score)/4, 1e-9)
}

func TestScenarioCreateValidation(t *testing.T) {
	h := newScenariosHandler(scenario.NewMemoryStore())

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed body", "{", http.StatusBadRequest},
		{"missing label", `{"threshold":0.60}`, http.StatusBadRequest},
		{"out of domain", `{"label":"x","threshold":0.90}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/scenarios", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()
			h.Create(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestScenarioCreateStoreError(t *testing.T) {
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("boom"))
	h := newScenariosHandler(store)

	body, _ := json.Marshal(CreateScenarioRequest{Label: "x", Threshold: 0.55})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scenarios", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	store.AssertExpectations(t)
}

func TestScenarioGetNotFound(t *testing.T) {
	store := new(MockStore)
	id := uuid.New()
	store.On("Get", mock.Anything, id).Return(nil, nil)
	h := newScenariosHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios/"+id.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScenarioListEmpty(t *testing.T) {
	h := newScenariosHandler(scenario.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestScenarioLifecycleThroughRouter(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(CreateScenarioRequest{Label: "cfo favorite", Threshold: 0.50})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scenarios", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created scenario.Scenario
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doGet(t, router, "/api/v1/scenarios")
	assert.Equal(t, http.StatusOK, rec.Code)
	var list []*scenario.Scenario
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/scenarios/"+created.ID.String(), nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(t, router, "/api/v1/scenarios/"+created.ID.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScenarioInvalidID(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/v1/scenarios/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
