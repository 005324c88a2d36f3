package mstengine

import (
	"errors"
	"testing"

	"github.com/rsmtlab/rsmt/edge"
	"github.com/rsmtlab/rsmt/marker"
	"github.com/rsmtlab/rsmt/point"
)

func setupCompleteGraph(coords [][2]int) ([]*point.Point, *edge.Store, *marker.Registry) {
	arena := point.NewArena()
	registry := marker.NewRegistry()
	var pts []*point.Point
	for _, c := range coords {
		p := arena.Add(c[0], c[1], point.Pin)
		registry.Init(p)
		pts = append(pts, p)
	}
	store := edge.NewStore()
	for i := 0; i < len(pts); i++ {
		for j := 0; j < i; j++ {
			store.Add(pts[i], pts[j], edge.Valid)
		}
	}
	return pts, store, registry
}

func TestRun_SinglePointIsZeroLength(t *testing.T) {
	pts, store, reg := setupCompleteGraph([][2]int{{2, 2}})
	length, err := Run(Real, pts, store, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if length != 0 {
		t.Fatalf("length = %d, want 0", length)
	}
}

func TestRun_LShapeTriple(t *testing.T) {
	pts, store, reg := setupCompleteGraph([][2]int{{0, 0}, {4, 0}, {4, 4}})
	length, err := Run(Real, pts, store, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if length != 8 {
		t.Fatalf("length = %d, want 8", length)
	}
	if len(store.Committed()) != 2 {
		t.Fatalf("expected 2 committed edges, got %d", len(store.Committed()))
	}
}

func TestRun_RealResetsCommittedAcrossRuns(t *testing.T) {
	pts, store, reg := setupCompleteGraph([][2]int{{0, 0}, {1, 0}, {2, 0}})
	if _, err := Run(Real, pts, store, reg); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := len(store.Committed())

	if _, err := Run(Real, pts, store, reg); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(store.Committed()) != first {
		t.Fatalf("committed edges accumulated across Real runs: %d then %d", first, len(store.Committed()))
	}
}

func TestRun_PseudoDoesNotCommit(t *testing.T) {
	pts, store, reg := setupCompleteGraph([][2]int{{0, 0}, {1, 0}, {2, 0}})
	length, err := Run(Pseudo, pts, store, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if length != 2 {
		t.Fatalf("length = %d, want 2", length)
	}
	if len(store.Committed()) != 0 {
		t.Fatalf("Pseudo mode must not populate committed edges")
	}
}

func TestRun_ResetsMarkersAfterSuccess(t *testing.T) {
	pts, store, reg := setupCompleteGraph([][2]int{{0, 0}, {1, 0}, {2, 0}})
	if _, err := Run(Real, pts, store, reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.SameComponent(pts[0], pts[2]) {
		t.Fatalf("expected markers reset to singletons after Run returns")
	}
}

func TestRun_EmptyActiveSetIsZeroLength(t *testing.T) {
	store := edge.NewStore()
	reg := marker.NewRegistry()
	length, err := Run(Real, nil, store, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if length != 0 {
		t.Fatalf("length = %d, want 0", length)
	}
}

func TestErrDisconnected_IsASentinel(t *testing.T) {
	if !errors.Is(ErrDisconnected, ErrDisconnected) {
		t.Fatalf("ErrDisconnected should satisfy errors.Is against itself")
	}
}
