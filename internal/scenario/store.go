package scenario

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-analytics/tradeoff/internal/engine"
	"github.com/meridian-analytics/tradeoff/internal/scoring"
)

// Scenario is a labelled bookmark of one explored threshold: the metrics and
// scorecard as computed at save time, so saved scenarios stay comparable
// even if exploration continues.
type Scenario struct {
	ID        uuid.UUID         `json:"id"`
	Label     string            `json:"label"`
	Threshold float64           `json:"threshold"`
	Metrics   engine.Metrics    `json:"metrics"`
	Scorecard scoring.Scorecard `json:"scorecard"`
	CreatedAt time.Time         `json:"created_at"`
}

// Store holds scenarios for the lifetime of the process. Nothing is
// persisted across restarts; scenarios are session furniture, not records.
type Store interface {
	Save(ctx context.Context, s *Scenario) error
	Get(ctx context.Context, id uuid.UUID) (*Scenario, error)
	List(ctx context.Context) ([]*Scenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryStore is the only Store implementation: a mutex-guarded map.
type MemoryStore struct {
	mu        sync.RWMutex
	scenarios map[uuid.UUID]*Scenario
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scenarios: make(map[uuid.UUID]*Scenario)}
}

// Save assigns the scenario an ID and creation time and stores it.
func (m *MemoryStore) Save(_ context.Context, s *Scenario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.New()
	s.CreatedAt = time.Now().UTC()
	m.scenarios[s.ID] = s
	return nil
}

// Get returns the scenario with the given ID, or nil if absent.
func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scenarios[id], nil
}

// List returns all scenarios in creation order.
func (m *MemoryStore) List(_ context.Context) ([]*Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Scenario, 0, len(m.scenarios))
	for _, s := range m.scenarios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Delete removes the scenario if present; deleting an absent ID is a no-op.
func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.scenarios, id)
	return nil
}
