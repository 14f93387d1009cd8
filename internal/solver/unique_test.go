package solver

import (
	"testing"

	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
	"variantsudoku/internal/region"
)

func uniqueOverRow(t *testing.T, width int) model.UniqueConstraint {
	t.Helper()
	r, err := region.Box{Start: geometry.NewPoint(0, 0), End: geometry.NewPoint(width-1, 0)}.Build()
	if err != nil {
		t.Fatal(err)
	}
	return model.UniqueConstraint{Region: r}
}

func TestPropagateUniqueStripsPlacedValues(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(3, 1), []model.NumberRange{{Low: 1, High: 3}}, nil)
	s := NewState(m)
	s.At(geometry.NewPoint(0, 0)).commit(1)

	if got := propagateUnique(s, uniqueOverRow(t, 3)); got != Changed {
		t.Fatalf("got %v, want Changed", got)
	}
	for x := 1; x < 3; x++ {
		for _, v := range s.At(geometry.NewPoint(x, 0)).CandidateValues(m.Values) {
			if v == 1 {
				t.Fatalf("cell (%d,0) still lists placed value 1", x)
			}
		}
	}
}

func TestPropagateUniqueDuplicatePlacedContradiction(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(3, 1), []model.NumberRange{{Low: 1, High: 3}}, nil)
	s := NewState(m)
	s.At(geometry.NewPoint(0, 0)).commit(2)
	s.At(geometry.NewPoint(2, 0)).commit(2)

	if got := propagateUnique(s, uniqueOverRow(t, 3)); got != Contradiction {
		t.Fatalf("got %v, want Contradiction", got)
	}
}

func TestPropagateUniqueNakedPairEliminates(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(3, 1), []model.NumberRange{{Low: 1, High: 3}}, nil)
	s := NewState(m)
	pair := func(v model.Value) bool { return v == 1 || v == 2 }
	for _, x := range []int{0, 1} {
		if _, ok := s.At(geometry.NewPoint(x, 0)).Limit(m.Values, pair); !ok {
			t.Fatal("setup limit failed")
		}
	}

	if got := propagateUnique(s, uniqueOverRow(t, 3)); got != Changed {
		t.Fatalf("got %v, want Changed", got)
	}
	third := s.At(geometry.NewPoint(2, 0))
	if !third.HasValue || third.Value != 3 {
		t.Fatalf("expected (2,0) to commit to 3, got HasValue=%v Value=%v", third.HasValue, third.Value)
	}
}

func TestPropagateUniqueHiddenSingleRestricts(t *testing.T) {
	// Two cells limited to {1,2} leave 3 with exactly one possible home.
	m := buildModel(t, geometry.NewPoint(3, 1), []model.NumberRange{{Low: 1, High: 3}}, nil)
	s := NewState(m)
	pair := func(v model.Value) bool { return v == 1 || v == 2 }
	for _, x := range []int{0, 1} {
		if _, ok := s.At(geometry.NewPoint(x, 0)).Limit(m.Values, pair); !ok {
			t.Fatal("setup limit failed")
		}
	}

	cells := []geometry.Point{
		geometry.NewPoint(0, 0), geometry.NewPoint(1, 0), geometry.NewPoint(2, 0),
	}
	if got := findHiddenSubsets(s, cells); got != Changed {
		t.Fatalf("got %v, want Changed", got)
	}
	third := s.At(geometry.NewPoint(2, 0))
	if !third.HasValue || third.Value != 3 {
		t.Fatalf("expected (2,0) to commit to 3, got HasValue=%v Value=%v", third.HasValue, third.Value)
	}
}

func TestPropagateUniqueTooFewValuesContradiction(t *testing.T) {
	// Three free cells whose candidate union has only two members cannot
	// all be filled distinctly.
	m := buildModel(t, geometry.NewPoint(3, 1), []model.NumberRange{{Low: 1, High: 3}}, nil)
	s := NewState(m)
	pair := func(v model.Value) bool { return v == 1 || v == 2 }
	for x := 0; x < 3; x++ {
		if _, ok := s.At(geometry.NewPoint(x, 0)).Limit(m.Values, pair); !ok {
			t.Fatal("setup limit failed")
		}
	}

	if got := propagateUnique(s, uniqueOverRow(t, 3)); got != Contradiction {
		t.Fatalf("got %v, want Contradiction", got)
	}
}

func TestPropagateUniqueIsMonotone(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(4, 1), []model.NumberRange{{Low: 1, High: 4}}, nil)
	s := NewState(m)
	s.At(geometry.NewPoint(0, 0)).commit(4)
	c := uniqueOverRow(t, 4)

	before := make(map[geometry.Point]int)
	for x := 0; x < 4; x++ {
		p := geometry.NewPoint(x, 0)
		before[p] = s.At(p).candidateCount()
	}
	for i := 0; i < 3; i++ {
		if got := propagateUnique(s, c); got == Contradiction {
			t.Fatal("unexpected contradiction")
		}
		for x := 0; x < 4; x++ {
			p := geometry.NewPoint(x, 0)
			after := s.At(p).candidateCount()
			if s.At(p).HasValue {
				after = 0
			}
			if after > before[p] {
				t.Fatalf("pass %d grew candidates of %v: %d -> %d", i, p, before[p], after)
			}
			before[p] = after
		}
	}
}
