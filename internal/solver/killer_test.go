package solver

import (
	"testing"

	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
	"variantsudoku/internal/region"
)

func cage(t *testing.T, sum model.Value, cells ...geometry.Point) model.KillerConstraint {
	t.Helper()
	r, err := region.Many{Cells: cells}.Build()
	if err != nil {
		t.Fatal(err)
	}
	return model.KillerConstraint{Region: r, Sum: sum}
}

func TestPropagateKillerPinsLastUnknownCell(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(2, 1), []model.NumberRange{{Low: 1, High: 4}}, nil)
	s := NewState(m)
	s.At(geometry.NewPoint(0, 0)).commit(2)

	c := cage(t, 5, geometry.NewPoint(0, 0), geometry.NewPoint(1, 0))
	if got := propagateKiller(s, c); got != Changed {
		t.Fatalf("got %v, want Changed", got)
	}
	other := s.At(geometry.NewPoint(1, 0))
	if !other.HasValue || other.Value != 3 {
		t.Fatalf("expected (1,0) pinned to 3, got HasValue=%v Value=%v", other.HasValue, other.Value)
	}
}

func TestPropagateKillerOvershootContradiction(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(2, 1), []model.NumberRange{{Low: 1, High: 4}}, nil)
	s := NewState(m)
	s.At(geometry.NewPoint(0, 0)).commit(4)

	c := cage(t, 3, geometry.NewPoint(0, 0), geometry.NewPoint(1, 0))
	if got := propagateKiller(s, c); got != Contradiction {
		t.Fatalf("got %v, want Contradiction", got)
	}
}

func TestPropagateKillerExactSumWithCellsLeftContradiction(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(2, 1), []model.NumberRange{{Low: 1, High: 4}}, nil)
	s := NewState(m)
	s.At(geometry.NewPoint(0, 0)).commit(3)

	c := cage(t, 3, geometry.NewPoint(0, 0), geometry.NewPoint(1, 0))
	if got := propagateKiller(s, c); got != Contradiction {
		t.Fatalf("got %v, want Contradiction", got)
	}
}

func TestPropagateKillerUnreachableSumContradiction(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(2, 1), []model.NumberRange{{Low: 1, High: 4}}, nil)
	s := NewState(m)

	// Two cells of V=1..4 can reach at most 4+3=7.
	c := cage(t, 20, geometry.NewPoint(0, 0), geometry.NewPoint(1, 0))
	if got := propagateKiller(s, c); got != Contradiction {
		t.Fatalf("got %v, want Contradiction", got)
	}
}

func TestPropagateKillerSatisfiedCageUnchanged(t *testing.T) {
	m := buildModel(t, geometry.NewPoint(2, 1), []model.NumberRange{{Low: 1, High: 4}}, nil)
	s := NewState(m)
	s.At(geometry.NewPoint(0, 0)).commit(1)
	s.At(geometry.NewPoint(1, 0)).commit(2)

	c := cage(t, 3, geometry.NewPoint(0, 0), geometry.NewPoint(1, 0))
	if got := propagateKiller(s, c); got != Unchanged {
		t.Fatalf("got %v, want Unchanged", got)
	}
}

func TestSolveCageLargerThanValueSet(t *testing.T) {
	// Without a Unique constraint values may repeat, so a cage can hold
	// more cells than V has members.
	size := geometry.NewPoint(3, 1)
	cells := []geometry.Point{
		geometry.NewPoint(0, 0), geometry.NewPoint(1, 0), geometry.NewPoint(2, 0),
	}
	m := buildModel(t, size, []model.NumberRange{{Low: 1, High: 2}},
		[]model.ConstraintSpecifier{model.KillerSpecifier{Region: region.Many{Cells: cells}, Sum: 4}})

	result := Solve(m)
	if !result.Solved {
		t.Fatal("expected a solution")
	}
	sum := model.Value(0)
	for _, p := range cells {
		sum += result.State.At(p).Value
	}
	if sum != 4 {
		t.Fatalf("cage sums to %v, want 4", sum)
	}
}

// killerCages partitions the 9x9 grid into cages whose sums come from
// gridFixture: four horizontal dominoes per row across columns 0-7,
// four vertical dominoes down column 8, and a single-cell cage at the
// bottom-right corner.
func killerCages() []model.ConstraintSpecifier {
	var out []model.ConstraintSpecifier
	add := func(cells ...geometry.Point) {
		sum := model.Value(0)
		for _, p := range cells {
			sum += gridFixture[p.Y][p.X]
		}
		out = append(out, model.KillerSpecifier{Region: region.Many{Cells: cells}, Sum: sum})
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 8; x += 2 {
			add(geometry.NewPoint(x, y), geometry.NewPoint(x+1, y))
		}
	}
	for y := 0; y < 8; y += 2 {
		add(geometry.NewPoint(8, y), geometry.NewPoint(8, y+1))
	}
	add(geometry.NewPoint(8, 8))
	return out
}

func TestSolveNineByNineKiller(t *testing.T) {
	size := geometry.NewPoint(9, 9)
	var constraints []model.ConstraintSpecifier
	constraints = append(constraints, nineByNineUniqueConstraints()...)
	constraints = append(constraints, killerCages()...)
	for _, p := range []geometry.Point{
		geometry.NewPoint(0, 0), geometry.NewPoint(4, 0), geometry.NewPoint(8, 0),
		geometry.NewPoint(2, 4), geometry.NewPoint(6, 4),
		geometry.NewPoint(0, 8), geometry.NewPoint(4, 8), geometry.NewPoint(8, 8),
	} {
		constraints = append(constraints, model.PropertySpecifier{
			Region:   region.Many{Cells: []geometry.Point{p}},
			Property: model.Property{Kind: model.PropertyGiven, Given: gridFixture[p.Y][p.X]},
		})
	}

	m := buildModel(t, size, []model.NumberRange{{Low: 1, High: 9}}, constraints)
	result := Solve(m)
	if !result.Solved {
		t.Fatal("expected a solution")
	}
	validateLatinSquare(t, result.State, size, 9)

	for _, spec := range killerCages() {
		killer := spec.(model.KillerSpecifier)
		r, err := killer.Region.Build()
		if err != nil {
			t.Fatal(err)
		}
		sum := model.Value(0)
		for _, p := range r.Cells() {
			sum += result.State.At(p).Value
		}
		if sum != killer.Sum {
			t.Errorf("cage %v sums to %v, want %v", r.Cells(), sum, killer.Sum)
		}
	}
}
