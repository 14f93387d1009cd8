package puzzlefile

import (
	"encoding/json"
	"fmt"

	"variantsudoku/internal/model"
)

// constraintJSON is the tagged-union JSON shape of
// model.ConstraintSpecifier: "constraint_type" is one of unique,
// thermometer, killer, arrow, relationship, property, plus each
// variant's own fields in snake_case.
type constraintJSON struct {
	ConstraintType string        `json:"constraint_type"`
	Region         *regionJSON   `json:"region,omitempty"`
	Line           [][2]int      `json:"line,omitempty"`
	Sum            *int          `json:"sum,omitempty"`
	Tail           *[2]int       `json:"tail,omitempty"`
	First          *[2]int       `json:"first,omitempty"`
	Second         *[2]int       `json:"second,omitempty"`
	Relationship   string        `json:"relationship,omitempty"`
	Property       *propertyJSON `json:"property,omitempty"`
}

func constraintToJSON(c model.ConstraintSpecifier) (constraintJSON, error) {
	switch s := c.(type) {
	case model.UniqueSpecifier:
		r, err := regionToJSON(s.Region)
		if err != nil {
			return constraintJSON{}, fmt.Errorf("unique: %w", err)
		}
		return constraintJSON{ConstraintType: "unique", Region: r}, nil

	case model.ThermometerSpecifier:
		return constraintJSON{ConstraintType: "thermometer", Line: lineSpecifierToJSON(s.Line)}, nil

	case model.KillerSpecifier:
		r, err := regionToJSON(s.Region)
		if err != nil {
			return constraintJSON{}, fmt.Errorf("killer: %w", err)
		}
		sum := int(s.Sum)
		return constraintJSON{ConstraintType: "killer", Region: r, Sum: &sum}, nil

	case model.ArrowSpecifier:
		r, err := regionToJSON(s.Region)
		if err != nil {
			return constraintJSON{}, fmt.Errorf("arrow: %w", err)
		}
		tail := pointTo(s.Tail)
		return constraintJSON{ConstraintType: "arrow", Region: r, Tail: &tail}, nil

	case model.RelationshipSpecifier:
		first, second := pointTo(s.First), pointTo(s.Second)
		return constraintJSON{
			ConstraintType: "relationship",
			First:          &first,
			Second:         &second,
			Relationship:   s.Relationship.String(),
		}, nil

	case model.PropertySpecifier:
		r, err := regionToJSON(s.Region)
		if err != nil {
			return constraintJSON{}, fmt.Errorf("property: %w", err)
		}
		pj := propertyToJSON(s.Property)
		return constraintJSON{ConstraintType: "property", Region: r, Property: &pj}, nil

	default:
		return constraintJSON{}, fmt.Errorf("constraint: unknown specifier type %T", c)
	}
}

func (c constraintJSON) toSpecifier() (model.ConstraintSpecifier, error) {
	switch c.ConstraintType {
	case "unique":
		r, err := regionFromJSON(c.Region)
		if err != nil {
			return nil, fmt.Errorf("unique: %w", err)
		}
		return model.UniqueSpecifier{Region: r}, nil

	case "thermometer":
		return model.ThermometerSpecifier{Line: lineSpecifierFromJSON(c.Line)}, nil

	case "killer":
		r, err := regionFromJSON(c.Region)
		if err != nil {
			return nil, fmt.Errorf("killer: %w", err)
		}
		if c.Sum == nil {
			return nil, reject("killer", "sum")
		}
		return model.KillerSpecifier{Region: r, Sum: model.Value(*c.Sum)}, nil

	case "arrow":
		r, err := regionFromJSON(c.Region)
		if err != nil {
			return nil, fmt.Errorf("arrow: %w", err)
		}
		if c.Tail == nil {
			return nil, reject("arrow", "tail")
		}
		return model.ArrowSpecifier{Region: r, Tail: pointFrom(*c.Tail)}, nil

	case "relationship":
		if c.First == nil || c.Second == nil {
			return nil, reject("relationship", "first/second")
		}
		rel, err := relationKindFromJSON(c.Relationship)
		if err != nil {
			return nil, err
		}
		return model.RelationshipSpecifier{
			First:        pointFrom(*c.First),
			Second:       pointFrom(*c.Second),
			Relationship: rel,
		}, nil

	case "property":
		r, err := regionFromJSON(c.Region)
		if err != nil {
			return nil, fmt.Errorf("property: %w", err)
		}
		if c.Property == nil {
			return nil, reject("property", "property")
		}
		return model.PropertySpecifier{Region: r, Property: c.Property.toProperty()}, nil

	default:
		return nil, fmt.Errorf("constraint: unknown constraint_type %q", c.ConstraintType)
	}
}

func relationKindFromJSON(s string) (model.RelationKind, error) {
	switch s {
	case "less":
		return model.RelLess, nil
	case "greater":
		return model.RelGreater, nil
	case "equal":
		return model.RelEqual, nil
	case "not_equal":
		return model.RelNotEqual, nil
	case "consecutive":
		return model.RelConsecutive, nil
	case "double":
		return model.RelDouble, nil
	default:
		return 0, fmt.Errorf("relationship: unknown relationship %q", s)
	}
}

// propertyJSON encodes model.Property: Even/Odd serialize as the bare
// strings "even"/"odd"; Given(v) serializes as the object {"given": v}.
type propertyJSON struct {
	kind  model.PropertyKind
	given model.Value
}

func propertyToJSON(p model.Property) propertyJSON {
	return propertyJSON{kind: p.Kind, given: p.Given}
}

func (p propertyJSON) toProperty() model.Property {
	return model.Property{Kind: p.kind, Given: p.given}
}

func (p propertyJSON) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case model.PropertyEven:
		return json.Marshal("even")
	case model.PropertyOdd:
		return json.Marshal("odd")
	case model.PropertyGiven:
		return json.Marshal(struct {
			Given int `json:"given"`
		}{Given: int(p.given)})
	default:
		return nil, fmt.Errorf("property: unknown kind %v", p.kind)
	}
}

func (p *propertyJSON) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "even":
			p.kind = model.PropertyEven
		case "odd":
			p.kind = model.PropertyOdd
		default:
			return fmt.Errorf("property: unknown property %q", s)
		}
		return nil
	}

	var obj struct {
		Given *int `json:"given"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("property: %w", err)
	}
	if obj.Given == nil {
		return fmt.Errorf("property: object form must set \"given\"")
	}
	p.kind = model.PropertyGiven
	p.given = model.Value(*obj.Given)
	return nil
}
