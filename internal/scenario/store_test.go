package scenario

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	sc := &Scenario{Label: "balanced", Threshold: 0.60}
	if err := s.Save(ctx, sc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if sc.ID == uuid.Nil {
		t.Error("Save did not assign an ID")
	}
	if sc.CreatedAt.IsZero() {
		t.Error("Save did not assign a creation time")
	}

	got, err := s.Get(ctx, sc.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Label != "balanced" {
		t.Errorf("Get returned %+v", got)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing scenario, got %+v", got)
	}
}

func TestMemoryStoreListOrdered(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, label := range []string{"first", "second", "third"} {
		if err := s.Save(ctx, &Scenario{Label: label}); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.Before(list[i-1].CreatedAt) {
			t.Error("list not in creation order")
		}
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	sc := &Scenario{Label: "doomed"}
	if err := s.Save(ctx, sc); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, sc.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, _ := s.Get(ctx, sc.ID)
	if got != nil {
		t.Error("scenario still present after delete")
	}

	// Deleting an unknown ID is a no-op.
	if err := s.Delete(ctx, uuid.New()); err != nil {
		t.Errorf("Delete of missing ID returned %v", err)
	}
}
