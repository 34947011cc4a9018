package commute

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "commute_logs.db"))
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return s
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	s := newTestStore(t)
	// A second call must not fail or disturb existing data.
	if err := s.Insert(context.Background(), Entry{TravelDate: "2026-08-30", TravelTime: "08:15", RouteName: "Home -> Office", DurationMinutes: 30}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("second ensure schema: %v", err)
	}
	entries, err := s.Recent(context.Background(), 50)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("want 1 entry after re-ensure, got %d", len(entries))
	}
}

func TestInsertThenRecentReturnsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := Entry{TravelDate: "2026-08-28", TravelTime: "18:40", RouteName: "Office -> Home", DurationMinutes: 45, Notes: "rain"}
	newer := Entry{TravelDate: "2026-08-29", TravelTime: "08:05", RouteName: "Home -> Office", DurationMinutes: 32}
	if err := s.Insert(ctx, older); err != nil {
		t.Fatalf("insert older: %v", err)
	}
	if err := s.Insert(ctx, newer); err != nil {
		t.Fatalf("insert newer: %v", err)
	}

	entries, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	got := entries[0]
	if got.TravelDate != newer.TravelDate || got.RouteName != newer.RouteName || got.DurationMinutes != newer.DurationMinutes {
		t.Fatalf("unexpected first entry: %+v", got)
	}
	if got.CreatedAt == "" {
		t.Fatalf("created_at not set")
	}
}

func TestRecentOrderingAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Same date and time for the last two: insertion order breaks the tie,
	// most recent insert first.
	fixtures := []Entry{
		{TravelDate: "2026-08-27", TravelTime: "09:00", RouteName: "A", DurationMinutes: 10},
		{TravelDate: "2026-08-28", TravelTime: "07:30", RouteName: "B", DurationMinutes: 20},
		{TravelDate: "2026-08-28", TravelTime: "09:00", RouteName: "C", DurationMinutes: 30},
		{TravelDate: "2026-08-28", TravelTime: "09:00", RouteName: "D", DurationMinutes: 40},
	}
	for i, e := range fixtures {
		if err := s.Insert(ctx, e); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	entries, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("limit not applied: got %d entries", len(entries))
	}
	wantRoutes := []string{"D", "C", "B"}
	for i, want := range wantRoutes {
		if entries[i].RouteName != want {
			t.Fatalf("position %d: want route %s, got %s (all: %+v)", i, want, entries[i].RouteName, entries)
		}
	}

	// Ordering is stable across repeated calls with no writes in between.
	again, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent again: %v", err)
	}
	for i := range again {
		if again[i].ID != entries[i].ID {
			t.Fatalf("unstable ordering at %d: %d vs %d", i, again[i].ID, entries[i].ID)
		}
	}
}

func TestSummarizeAggregates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fixtures := []Entry{
		{TravelDate: "2026-08-28", TravelTime: "08:00", RouteName: "RouteA", DurationMinutes: 30},
		{TravelDate: "2026-08-29", TravelTime: "08:00", RouteName: "RouteA", DurationMinutes: 50},
		{TravelDate: "2026-08-29", TravelTime: "18:00", RouteName: "RouteB", DurationMinutes: 20},
	}
	for i, e := range fixtures {
		if err := s.Insert(ctx, e); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	summary, err := s.Summarize(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("want 2 routes, got %d", len(summary))
	}
	a, b := summary[0], summary[1]
	if a.RouteName != "RouteA" || a.Trips != 2 || a.TotalMinutes != 80 || a.AvgMinutes != 40.0 {
		t.Fatalf("unexpected RouteA summary: %+v", a)
	}
	if b.RouteName != "RouteB" || b.Trips != 1 || b.TotalMinutes != 20 || b.AvgMinutes != 20.0 {
		t.Fatalf("unexpected RouteB summary: %+v", b)
	}
}

func TestSummarizeEmptyStore(t *testing.T) {
	s := newTestStore(t)
	summary, err := s.Summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(summary) != 0 {
		t.Fatalf("want empty summary, got %+v", summary)
	}
}
