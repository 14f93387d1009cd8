package puzzlefile

import (
	"fmt"

	"variantsudoku/internal/region"
)

// regionJSON is the tagged-union JSON shape of region.Specifier:
// "region_type" is one of many, box, many_box, line, combination.
type regionJSON struct {
	RegionType string      `json:"region_type"`
	Start      *[2]int     `json:"start,omitempty"`
	End        *[2]int     `json:"end,omitempty"`
	Boxes      []boxJSON   `json:"boxes,omitempty"`
	Cells      [][2]int    `json:"cells,omitempty"`
	Points     [][2]int    `json:"points,omitempty"`
	Op         string      `json:"op,omitempty"`
	A          *regionJSON `json:"a,omitempty"`
	B          *regionJSON `json:"b,omitempty"`
}

type boxJSON struct {
	Start [2]int `json:"start"`
	End   [2]int `json:"end"`
}

func regionToJSON(spec region.Specifier) (*regionJSON, error) {
	switch s := spec.(type) {
	case region.Box:
		start, end := pointTo(s.Start), pointTo(s.End)
		return &regionJSON{RegionType: "box", Start: &start, End: &end}, nil
	case region.ManyBox:
		boxes := make([]boxJSON, len(s.Boxes))
		for i, b := range s.Boxes {
			boxes[i] = boxJSON{Start: pointTo(b.Start), End: pointTo(b.End)}
		}
		return &regionJSON{RegionType: "many_box", Boxes: boxes}, nil
	case region.Many:
		return &regionJSON{RegionType: "many", Cells: pointsTo(s.Cells)}, nil
	case region.LineRegion:
		return &regionJSON{RegionType: "line", Points: pointsTo(s.Points)}, nil
	case region.Combination:
		a, err := regionToJSON(s.A)
		if err != nil {
			return nil, fmt.Errorf("combination: a: %w", err)
		}
		b, err := regionToJSON(s.B)
		if err != nil {
			return nil, fmt.Errorf("combination: b: %w", err)
		}
		return &regionJSON{RegionType: "combination", Op: s.Op.String(), A: a, B: b}, nil
	default:
		return nil, fmt.Errorf("region: unknown specifier type %T", spec)
	}
}

func regionFromJSON(r *regionJSON) (region.Specifier, error) {
	if r == nil {
		return nil, fmt.Errorf("region: missing region")
	}
	switch r.RegionType {
	case "box":
		if r.Start == nil || r.End == nil {
			return nil, reject("box", "start/end")
		}
		return region.Box{Start: pointFrom(*r.Start), End: pointFrom(*r.End)}, nil
	case "many_box":
		boxes := make([]region.BoxBounds, len(r.Boxes))
		for i, b := range r.Boxes {
			boxes[i] = region.BoxBounds{Start: pointFrom(b.Start), End: pointFrom(b.End)}
		}
		return region.ManyBox{Boxes: boxes}, nil
	case "many":
		return region.Many{Cells: pointsFrom(r.Cells)}, nil
	case "line":
		return region.LineRegion{Points: pointsFrom(r.Points)}, nil
	case "combination":
		op, err := setOpFromJSON(r.Op)
		if err != nil {
			return nil, err
		}
		a, err := regionFromJSON(r.A)
		if err != nil {
			return nil, fmt.Errorf("combination: a: %w", err)
		}
		b, err := regionFromJSON(r.B)
		if err != nil {
			return nil, fmt.Errorf("combination: b: %w", err)
		}
		return region.Combination{Op: op, A: a, B: b}, nil
	default:
		return nil, fmt.Errorf("region: unknown region_type %q", r.RegionType)
	}
}

func setOpFromJSON(op string) (region.SetOp, error) {
	switch op {
	case "union":
		return region.SetUnion, nil
	case "intersection":
		return region.SetIntersection, nil
	case "difference":
		return region.SetDifference, nil
	default:
		return 0, fmt.Errorf("region: unknown combination op %q", op)
	}
}

func lineSpecifierToJSON(l region.LineSpecifier) [][2]int {
	return pointsTo(l.Points)
}

func lineSpecifierFromJSON(points [][2]int) region.LineSpecifier {
	return region.LineSpecifier{Points: pointsFrom(points)}
}
