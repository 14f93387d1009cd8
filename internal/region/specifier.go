package region

import (
	"fmt"

	"variantsudoku/internal/geometry"
)

// SetOp names the set-algebra operator a Combination specifier applies
// to its two sub-regions.
type SetOp int

const (
	SetUnion SetOp = iota
	SetIntersection
	SetDifference
)

func (op SetOp) String() string {
	switch op {
	case SetUnion:
		return "union"
	case SetIntersection:
		return "intersection"
	case SetDifference:
		return "difference"
	default:
		return "unknown"
	}
}

// Specifier is the declarative, immutable description of a region.
// Box, ManyBox, Many, LineRegion and Combination are its five variants;
// Build expands any of them into a concrete Region.
type Specifier interface {
	Build() (Region, error)
}

// Box is an axis-aligned rectangle, inclusive of both corners and
// normalized by min/max per axis.
type Box struct {
	Start, End geometry.Point
}

func (b Box) Build() (Region, error) {
	return NewRegion(geometry.BoxCells(b.Start, b.End)), nil
}

// BoxBounds is one (start, end) pair inside a ManyBox specifier.
type BoxBounds struct {
	Start, End geometry.Point
}

// ManyBox is the union of several boxes.
type ManyBox struct {
	Boxes []BoxBounds
}

func (m ManyBox) Build() (Region, error) {
	var cells []geometry.Point
	for _, b := range m.Boxes {
		cells = append(cells, geometry.BoxCells(b.Start, b.End)...)
	}
	return NewRegion(cells), nil
}

// Many is an explicitly enumerated set of cells; duplicates collapse.
type Many struct {
	Cells []geometry.Point
}

func (m Many) Build() (Region, error) {
	return NewRegion(m.Cells), nil
}

// LineRegion expands a polyline to cells the same way LineSpecifier
// does, then folds the ordered sequence into an unordered Region. It is
// distinct from LineSpecifier/Line, which preserve order for
// constraints where sequence carries meaning.
type LineRegion struct {
	Points []geometry.Point
}

func (l LineRegion) Build() (Region, error) {
	cells, err := buildLine(l.Points)
	if err != nil {
		return Region{}, err
	}
	return NewRegion(cells), nil
}

// Combination applies a set operator to two sub-region specifiers,
// recursively expanding both sides first. An error in either side is
// fatal to the whole build.
type Combination struct {
	Op   SetOp
	A, B Specifier
}

func (c Combination) Build() (Region, error) {
	a, err := c.A.Build()
	if err != nil {
		return Region{}, fmt.Errorf("region: combination left side: %w", err)
	}
	b, err := c.B.Build()
	if err != nil {
		return Region{}, fmt.Errorf("region: combination right side: %w", err)
	}
	switch c.Op {
	case SetUnion:
		return Union(a, b), nil
	case SetIntersection:
		return Intersection(a, b), nil
	case SetDifference:
		return Difference(a, b), nil
	default:
		return Region{}, fmt.Errorf("region: unknown set operation %d", c.Op)
	}
}
