package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/robocook/foon/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testUnit() *model.FunctionalUnit {
	return &model.FunctionalUnit{Lines: []model.Line{
		{Kind: model.LineObject, Name: "onion", Rest: "1"},
		{Kind: model.LineMotion, Name: "slice"},
		{Kind: model.LineObject, Name: "onion", Rest: "1"},
		{Kind: model.LineState, Name: "ring", Rest: "shaped"},
	}}
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	run, err := s.Record(ctx, RecordParams{
		Strategy: "ids", Object: "onion", State: "ring shaped",
		Found: true, Unit: testUnit(), Elapsed: 1.25,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if run.ID == "" {
		t.Fatal("record: empty run ID")
	}

	runs, err := s.List(ctx, ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs; want 1", len(runs))
	}
	got := runs[0]
	if got.Object != "onion" || got.State != "ring shaped" || !got.Found {
		t.Errorf("run = %+v; want onion/ring shaped/found", got)
	}
	if got.Unit == nil || got.Unit.Motion() != "slice" {
		t.Errorf("unit did not round-trip: %+v", got.Unit)
	}
	if got.ElapsedMS != 1.25 {
		t.Errorf("elapsed = %v; want 1.25", got.ElapsedMS)
	}
}

func TestRecordNotFoundRun(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Record(ctx, RecordParams{
		Strategy: "astar", Object: "lobster", State: "boiled", Found: false,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	runs, err := s.List(ctx, ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 || runs[0].Found || runs[0].Unit != nil {
		t.Errorf("runs = %+v; want one not-found run with nil unit", runs)
	}
}

func TestRecordRejectsBadStrategy(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Record(context.Background(), RecordParams{Strategy: "bfs"}); err == nil {
		t.Error("want error for unknown strategy")
	}
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, p := range []RecordParams{
		{Strategy: "ids", Object: "onion", State: "sliced", Found: true},
		{Strategy: "astar", Object: "onion", State: "sliced", Found: true},
		{Strategy: "ids", Object: "egg", State: "cooked", Found: false},
	} {
		if _, err := s.Record(ctx, p); err != nil {
			t.Fatalf("record %+v: %v", p, err)
		}
	}

	byStrategy, err := s.List(ctx, ListParams{Strategy: "ids"})
	if err != nil {
		t.Fatalf("list by strategy: %v", err)
	}
	if len(byStrategy) != 2 {
		t.Errorf("got %d ids runs; want 2", len(byStrategy))
	}

	byObject, err := s.List(ctx, ListParams{Object: "egg"})
	if err != nil {
		t.Fatalf("list by object: %v", err)
	}
	if len(byObject) != 1 || byObject[0].Found {
		t.Errorf("egg runs = %+v; want one not-found run", byObject)
	}

	limited, err := s.List(ctx, ListParams{Limit: 1})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d runs; want 1", len(limited))
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Record(ctx, RecordParams{Strategy: "ids", Object: "onion", State: "sliced", Found: true})
	s.Record(ctx, RecordParams{Strategy: "ids", Object: "egg", State: "cooked", Found: false})
	s.Record(ctx, RecordParams{Strategy: "astar", Object: "onion", State: "sliced", Found: true})

	st, err := s.Stats(ctx, "ignored-path")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalRuns != 3 || st.FoundRuns != 2 {
		t.Errorf("stats = %+v; want 3 total, 2 found", st)
	}
	if len(st.Strategies) != 2 {
		t.Fatalf("got %d strategies; want 2", len(st.Strategies))
	}
	if st.Strategies[0].Strategy != "ids" || st.Strategies[0].Count != 2 {
		t.Errorf("top strategy = %+v; want ids with 2 runs", st.Strategies[0])
	}
}
