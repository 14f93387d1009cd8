package region

import (
	"fmt"

	"variantsudoku/internal/geometry"
)

// Line is an expanded, ordered sequence of grid cells, used wherever
// order carries meaning (Thermometer, Arrow's region-to-tail direction
// is unordered but the region feeding a Thermometer is not).
type Line struct {
	Cells []geometry.Point
}

// LineSpecifier is a polyline of at least two waypoints. Consecutive
// waypoints must be colinear horizontally, vertically, or along a 45°
// diagonal (geometry.LineCells enforces this).
type LineSpecifier struct {
	Points []geometry.Point
}

// Build expands the polyline into an ordered Line. The endpoint of every
// non-final segment is emitted exactly once (it is also the start point
// of the next segment); the final endpoint is included.
func (s LineSpecifier) Build() (Line, error) {
	cells, err := buildLine(s.Points)
	if err != nil {
		return Line{}, err
	}
	return Line{Cells: cells}, nil
}

// buildLine is the shared polyline-expansion routine used both by
// LineSpecifier.Build and by the RegionSpecifier Line variant (which
// folds the same ordered sequence into an unordered Region).
func buildLine(points []geometry.Point) ([]geometry.Point, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("region: a line needs at least two waypoints, got %d", len(points))
	}
	cells := make([]geometry.Point, 0, len(points))
	for i := 0; i+1 < len(points); i++ {
		includeEnd := i+2 == len(points)
		segment, err := geometry.LineCells(points[i], points[i+1], includeEnd)
		if err != nil {
			return nil, err
		}
		cells = append(cells, segment...)
	}
	return cells, nil
}
