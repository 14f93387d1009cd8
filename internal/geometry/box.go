package geometry

// BoxCells enumerates every integer point in the axis-aligned rectangle
// bounded by start and end, inclusive of both corners. The corners are
// normalized (min/max per axis) before iterating, so callers may pass
// them in either order. Points are yielded in row-major order (Y outer,
// X inner).
func BoxCells(start, end Point) []Point {
	xmin, xmax := start.X, end.X
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}
	ymin, ymax := start.Y, end.Y
	if ymin > ymax {
		ymin, ymax = ymax, ymin
	}

	cells := make([]Point, 0, (xmax-xmin+1)*(ymax-ymin+1))
	for y := ymin; y <= ymax; y++ {
		for x := xmin; x <= xmax; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}
