// Package puzzlefile is the JSON serialization boundary: it translates
// between the on-disk puzzle document and the declarative
// model.SudokuSpecifier tree, with no solving logic of its own. Tagged
// variants (regions, constraints, relationships, properties) are
// decoded by a discriminator field.
package puzzlefile

import (
	"encoding/json"
	"fmt"

	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
)

// Document is the top-level JSON shape of a puzzle file: a size, a list
// of inclusive number ranges, and the constraint list.
type Document struct {
	Size        [2]int           `json:"size"`
	Numbers     [][2]int         `json:"numbers"`
	Constraints []constraintJSON `json:"constraints"`
}

// Parse decodes a puzzle document into an unexpanded model.SudokuSpecifier.
// Building the specifier into a model.SudokuModel (region/line expansion,
// bounds validation) is the caller's job; parsing is a pure structural
// translation.
func Parse(data []byte) (model.SudokuSpecifier, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.SudokuSpecifier{}, fmt.Errorf("puzzlefile: parse: %w", err)
	}

	numbers := make([]model.NumberRange, len(doc.Numbers))
	for i, n := range doc.Numbers {
		numbers[i] = model.NumberRange{Low: model.Value(n[0]), High: model.Value(n[1])}
	}

	constraints := make([]model.ConstraintSpecifier, len(doc.Constraints))
	for i, c := range doc.Constraints {
		spec, err := c.toSpecifier()
		if err != nil {
			return model.SudokuSpecifier{}, fmt.Errorf("puzzlefile: constraint %d: %w", i, err)
		}
		constraints[i] = spec
	}

	return model.SudokuSpecifier{
		Size:        geometry.NewPoint(doc.Size[0], doc.Size[1]),
		Numbers:     numbers,
		Constraints: constraints,
	}, nil
}

// Serialize re-encodes a SudokuSpecifier to JSON. When pretty is true
// the output is indented. Field order may differ from the source
// document but parsing the result again reconstructs an equal
// specifier.
func Serialize(spec model.SudokuSpecifier, pretty bool) ([]byte, error) {
	doc := Document{
		Size:    [2]int{spec.Size.X, spec.Size.Y},
		Numbers: make([][2]int, len(spec.Numbers)),
	}
	for i, n := range spec.Numbers {
		doc.Numbers[i] = [2]int{int(n.Low), int(n.High)}
	}
	doc.Constraints = make([]constraintJSON, len(spec.Constraints))
	for i, c := range spec.Constraints {
		cj, err := constraintToJSON(c)
		if err != nil {
			return nil, fmt.Errorf("puzzlefile: constraint %d: %w", i, err)
		}
		doc.Constraints[i] = cj
	}

	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func pointFrom(p [2]int) geometry.Point { return geometry.NewPoint(p[0], p[1]) }
func pointTo(p geometry.Point) [2]int   { return [2]int{p.X, p.Y} }

func pointsFrom(ps [][2]int) []geometry.Point {
	out := make([]geometry.Point, len(ps))
	for i, p := range ps {
		out[i] = pointFrom(p)
	}
	return out
}

func pointsTo(ps []geometry.Point) [][2]int {
	out := make([][2]int, len(ps))
	for i, p := range ps {
		out[i] = pointTo(p)
	}
	return out
}

// reject is used for a required field that is nil or empty in a
// discriminated variant's JSON, e.g. a "box" region missing "start".
func reject(constraintType, field string) error {
	return fmt.Errorf("missing required field %q for %q", field, constraintType)
}
