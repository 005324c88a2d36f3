package hanan

import (
	"reflect"
	"testing"
)

func TestCandidates_PlusShape(t *testing.T) {
	pins := []Coord{{0, 2}, {4, 2}, {2, 0}, {2, 4}}
	got := Candidates(5, pins)
	want := []Coord{{0, 0}, {0, 4}, {2, 2}, {4, 0}, {4, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
}

func TestCandidates_ExcludesPinsAndOrdersLexicographically(t *testing.T) {
	pins := []Coord{{0, 0}, {2, 0}, {4, 0}, {1, 2}, {4, 4}, {0, 4}}
	got := Candidates(5, pins)
	for _, c := range got {
		for _, p := range pins {
			if c == p {
				t.Fatalf("candidate %v duplicates a pin", c)
			}
		}
	}
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		if a[0] > b[0] || (a[0] == b[0] && a[1] > b[1]) {
			t.Fatalf("candidates not lexicographically ordered at index %d: %v then %v", i, a, b)
		}
	}
}

func TestCandidates_ColinearPinsHaveNoCandidates(t *testing.T) {
	pins := []Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	got := Candidates(5, pins)
	if len(got) != 0 {
		t.Fatalf("expected no Hanan candidates for colinear pins, got %v", got)
	}
}
