package geometry

import "fmt"

// LineCells enumerates the integer points on the straight segment from
// start to end. The segment must be axis-aligned (horizontal or
// vertical) or exactly 45°-diagonal (|dx| == |dy|, both nonzero);
// anything else is a build error, as is a degenerate segment where start
// and end coincide.
//
// Let steps = max(|dx|, |dy|). LineCells yields steps+1 points when
// includeEnd is true, or steps points (dropping the final point)
// otherwise, used by region/line expansion to avoid emitting a
// polyline's interior junction twice.
func LineCells(start, end Point, includeEnd bool) ([]Point, error) {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if dx == 0 && dy == 0 {
		return nil, fmt.Errorf("geometry: line start and end are the same point %v", start)
	}
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return nil, fmt.Errorf("geometry: line from %v to %v is neither axis-aligned nor a 45° diagonal", start, end)
	}

	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	stepX, stepY := sign(dx), sign(dy)

	count := steps
	if includeEnd {
		count = steps + 1
	}

	cells := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		cells = append(cells, Point{X: start.X + stepX*i, Y: start.Y + stepY*i})
	}
	return cells, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
