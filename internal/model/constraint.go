package model

import (
	"fmt"

	"variantsudoku/internal/geometry"
	"variantsudoku/internal/region"
)

// RelationKind is the binary relationship a Relationship constraint
// checks between two cells.
type RelationKind int

const (
	RelLess RelationKind = iota
	RelGreater
	RelEqual
	RelNotEqual
	RelConsecutive
	RelDouble
)

func (k RelationKind) String() string {
	switch k {
	case RelLess:
		return "less"
	case RelGreater:
		return "greater"
	case RelEqual:
		return "equal"
	case RelNotEqual:
		return "not_equal"
	case RelConsecutive:
		return "consecutive"
	case RelDouble:
		return "double"
	default:
		return "unknown"
	}
}

// PropertyKind is a per-cell property a Property constraint checks.
type PropertyKind int

const (
	PropertyEven PropertyKind = iota
	PropertyOdd
	PropertyGiven
)

// Property is a PropertyKind plus the payload Given(v) carries.
type Property struct {
	Kind  PropertyKind
	Given Value
}

// ConstraintSpecifier is the declarative description of one constraint.
// Build expands its region/line and validates anything that must be
// rejected before solving (a Relationship over a single cell, a
// malformed line).
type ConstraintSpecifier interface {
	Build() (Constraint, error)
}

// Constraint is an expanded constraint, ready for the propagators in
// internal/solver to read. Dispatch over its variants is a type switch;
// adding a constraint kind means adding a variant here and one
// propagator there.
type Constraint interface {
	cells() []geometry.Point // every cell a bounds check must validate
}

// UniqueSpecifier/UniqueConstraint: all filled cells in a region carry
// distinct values.
type UniqueSpecifier struct {
	Region region.Specifier
}

func (s UniqueSpecifier) Build() (Constraint, error) {
	r, err := s.Region.Build()
	if err != nil {
		return nil, fmt.Errorf("unique: %w", err)
	}
	return UniqueConstraint{Region: r}, nil
}

type UniqueConstraint struct {
	Region region.Region
}

func (c UniqueConstraint) cells() []geometry.Point { return c.Region.Cells() }

// ThermometerSpecifier/ThermometerConstraint: values strictly increase
// along an ordered line.
type ThermometerSpecifier struct {
	Line region.LineSpecifier
}

func (s ThermometerSpecifier) Build() (Constraint, error) {
	l, err := s.Line.Build()
	if err != nil {
		return nil, fmt.Errorf("thermometer: %w", err)
	}
	return ThermometerConstraint{Line: l}, nil
}

type ThermometerConstraint struct {
	Line region.Line
}

func (c ThermometerConstraint) cells() []geometry.Point { return c.Line.Cells }

// KillerSpecifier/KillerConstraint: values in a region sum to exactly
// Sum. Uniqueness within the cage is not implied.
type KillerSpecifier struct {
	Region region.Specifier
	Sum    Value
}

func (s KillerSpecifier) Build() (Constraint, error) {
	r, err := s.Region.Build()
	if err != nil {
		return nil, fmt.Errorf("killer: %w", err)
	}
	return KillerConstraint{Region: r, Sum: s.Sum}, nil
}

type KillerConstraint struct {
	Region region.Region
	Sum    Value
}

func (c KillerConstraint) cells() []geometry.Point { return c.Region.Cells() }

// ArrowSpecifier/ArrowConstraint: values in a region sum to the value
// held at the tail cell.
type ArrowSpecifier struct {
	Region region.Specifier
	Tail   geometry.Point
}

func (s ArrowSpecifier) Build() (Constraint, error) {
	r, err := s.Region.Build()
	if err != nil {
		return nil, fmt.Errorf("arrow: %w", err)
	}
	return ArrowConstraint{Region: r, Tail: s.Tail}, nil
}

type ArrowConstraint struct {
	Region region.Region
	Tail   geometry.Point
}

func (c ArrowConstraint) cells() []geometry.Point {
	return append(c.Region.Cells(), c.Tail)
}

// RelationshipSpecifier/RelationshipConstraint: a binary relation on
// two distinct cells. Rejected at build time when First == Second.
type RelationshipSpecifier struct {
	First, Second geometry.Point
	Relationship  RelationKind
}

func (s RelationshipSpecifier) Build() (Constraint, error) {
	if s.First == s.Second {
		return nil, fmt.Errorf("relationship: first and second cell must differ, both are %v", s.First)
	}
	return RelationshipConstraint{First: s.First, Second: s.Second, Relationship: s.Relationship}, nil
}

type RelationshipConstraint struct {
	First, Second geometry.Point
	Relationship  RelationKind
}

func (c RelationshipConstraint) cells() []geometry.Point {
	return []geometry.Point{c.First, c.Second}
}

// PropertySpecifier/PropertyConstraint: every cell in a region
// satisfies a per-cell property (parity or a given value).
type PropertySpecifier struct {
	Region   region.Specifier
	Property Property
}

func (s PropertySpecifier) Build() (Constraint, error) {
	r, err := s.Region.Build()
	if err != nil {
		return nil, fmt.Errorf("property: %w", err)
	}
	return PropertyConstraint{Region: r, Property: s.Property}, nil
}

type PropertyConstraint struct {
	Region   region.Region
	Property Property
}

func (c PropertyConstraint) cells() []geometry.Point { return c.Region.Cells() }
