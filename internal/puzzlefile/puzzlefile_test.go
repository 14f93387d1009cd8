package puzzlefile

import (
	"testing"

	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
	"variantsudoku/internal/region"
)

func pt(x, y int) geometry.Point { return geometry.NewPoint(x, y) }

func sampleSpecifier() model.SudokuSpecifier {
	return model.SudokuSpecifier{
		Size:    pt(3, 3),
		Numbers: []model.NumberRange{{Low: 1, High: 9}},
		Constraints: []model.ConstraintSpecifier{
			model.UniqueSpecifier{Region: region.Box{Start: pt(0, 0), End: pt(2, 2)}},
			model.ThermometerSpecifier{Line: region.LineSpecifier{Points: []geometry.Point{pt(0, 0), pt(2, 2)}}},
			model.KillerSpecifier{Region: region.Many{Cells: []geometry.Point{pt(0, 0), pt(1, 0)}}, Sum: 10},
			model.ArrowSpecifier{Region: region.Many{Cells: []geometry.Point{pt(0, 1)}}, Tail: pt(0, 0)},
			model.RelationshipSpecifier{First: pt(0, 0), Second: pt(1, 0), Relationship: model.RelConsecutive},
			model.PropertySpecifier{
				Region:   region.Many{Cells: []geometry.Point{pt(2, 2)}},
				Property: model.Property{Kind: model.PropertyGiven, Given: 4},
			},
			model.PropertySpecifier{
				Region:   region.Many{Cells: []geometry.Point{pt(1, 1)}},
				Property: model.Property{Kind: model.PropertyEven},
			},
			model.UniqueSpecifier{Region: region.Combination{
				Op: region.SetUnion,
				A:  region.Many{Cells: []geometry.Point{pt(0, 0)}},
				B:  region.Many{Cells: []geometry.Point{pt(1, 1)}},
			}},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	spec := sampleSpecifier()

	data, err := Serialize(spec, false)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	data2, err := Serialize(parsed, false)
	if err != nil {
		t.Fatalf("re-serialize: %v", err)
	}
	if string(data) != string(data2) {
		t.Fatalf("round trip not idempotent:\n%s\nvs\n%s", data, data2)
	}

	// Building both specifiers should produce equivalent models.
	m1, err := spec.Build()
	if err != nil {
		t.Fatalf("build original: %v", err)
	}
	m2, err := parsed.Build()
	if err != nil {
		t.Fatalf("build round-tripped: %v", err)
	}
	if len(m1.Constraints) != len(m2.Constraints) {
		t.Fatalf("constraint count differs: %d vs %d", len(m1.Constraints), len(m2.Constraints))
	}
}

func TestRoundTripPretty(t *testing.T) {
	spec := sampleSpecifier()
	data, err := Serialize(spec, true)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if _, err := Parse(data); err != nil {
		t.Fatalf("parse pretty output: %v", err)
	}
}

func TestParseRejectsUnknownConstraintType(t *testing.T) {
	data := []byte(`{"size":[1,1],"numbers":[[1,1]],"constraints":[{"constraint_type":"bogus"}]}`)
	if _, err := Parse(data); err == nil {
		t.Error("expected an error for an unknown constraint_type")
	}
}

func TestParseRejectsUnknownRegionType(t *testing.T) {
	data := []byte(`{"size":[1,1],"numbers":[[1,1]],"constraints":[
		{"constraint_type":"unique","region":{"region_type":"bogus"}}
	]}`)
	if _, err := Parse(data); err == nil {
		t.Error("expected an error for an unknown region_type")
	}
}

func TestPropertyGivenJSONShape(t *testing.T) {
	spec := model.SudokuSpecifier{
		Size:    pt(1, 1),
		Numbers: []model.NumberRange{{Low: 1, High: 9}},
		Constraints: []model.ConstraintSpecifier{
			model.PropertySpecifier{
				Region:   region.Many{Cells: []geometry.Point{pt(0, 0)}},
				Property: model.Property{Kind: model.PropertyGiven, Given: 7},
			},
		},
	}
	data, err := Serialize(spec, false)
	if err != nil {
		t.Fatal(err)
	}
	if !contains(string(data), `"given":7`) {
		t.Errorf("expected {\"given\":7} in output, got %s", data)
	}
}

func contains(haystack, needle string) bool {
	return len(haystack) >= len(needle) && indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
