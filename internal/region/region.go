// Package region turns the declarative RegionSpecifier/LineSpecifier trees
// (boxes, enumerated cells, unions of boxes, polylines, and set-algebra
// combinators) into concrete cell collections: an unordered Region for
// constraints like Unique and Killer, or an ordered Line for constraints
// like Thermometer where sequence carries meaning.
package region

import (
	"sort"

	"variantsudoku/internal/geometry"
)

// Region is an expanded, unordered set of grid cells. Build does not
// check that cells lie within any particular grid; bounds validation
// happens at model construction, not region expansion.
type Region struct {
	cells map[geometry.Point]struct{}
}

// NewRegion builds a Region from an arbitrary slice of points,
// collapsing duplicates.
func NewRegion(points []geometry.Point) Region {
	cells := make(map[geometry.Point]struct{}, len(points))
	for _, p := range points {
		cells[p] = struct{}{}
	}
	return Region{cells: cells}
}

// Contains reports whether p is a member of the region.
func (r Region) Contains(p geometry.Point) bool {
	_, ok := r.cells[p]
	return ok
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	return len(r.cells)
}

// Cells returns the region's cells in a deterministic (row-major) order.
// Region membership itself is unordered; propagators that need a stable
// iteration order (for reproducible error messages and test fixtures)
// use this instead of ranging over the underlying set directly.
func (r Region) Cells() []geometry.Point {
	cells := make([]geometry.Point, 0, len(r.cells))
	for p := range r.cells {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

// Union returns the set union of a and b.
func Union(a, b Region) Region {
	cells := make(map[geometry.Point]struct{}, len(a.cells)+len(b.cells))
	for p := range a.cells {
		cells[p] = struct{}{}
	}
	for p := range b.cells {
		cells[p] = struct{}{}
	}
	return Region{cells: cells}
}

// Intersection returns the set intersection of a and b.
func Intersection(a, b Region) Region {
	cells := make(map[geometry.Point]struct{})
	small, large := a, b
	if len(b.cells) < len(a.cells) {
		small, large = b, a
	}
	for p := range small.cells {
		if _, ok := large.cells[p]; ok {
			cells[p] = struct{}{}
		}
	}
	return Region{cells: cells}
}

// Difference returns the cells in a that are not in b.
func Difference(a, b Region) Region {
	cells := make(map[geometry.Point]struct{}, len(a.cells))
	for p := range a.cells {
		if _, ok := b.cells[p]; !ok {
			cells[p] = struct{}{}
		}
	}
	return Region{cells: cells}
}
