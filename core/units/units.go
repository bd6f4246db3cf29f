// Package units defines the closed unit sets for each quantity kind.
// Every unit carries a display name and the factor that converts a value in
// that unit into the kind's canonical unit.
package units

import (
	"fmt"
	"math"
)

// Kind identifies a family of mutually convertible units
type Kind string

const (
	KindWeight Kind = "WEIGHT"
	KindLength Kind = "LENGTH"
	KindVolume Kind = "VOLUME"
)

// String returns the string representation
func (k Kind) String() string {
	return string(k)
}

// Descriptor describes a single unit
type Descriptor interface {
	// Name is the display name, e.g. "GRAM"
	Name() string

	// ToBaseFactor multiplies a value in this unit into the kind's canonical unit
	ToBaseFactor() float64

	// Kind is the family this unit belongs to
	Kind() Kind

	// Valid reports whether the unit is one of the declared constants
	Valid() bool
}

// Unit is the type-parameter constraint for quantities. Each kind has its own
// concrete unit type, so quantities of different kinds never share a type.
type Unit interface {
	comparable
	Descriptor
}

type entry struct {
	name   string
	factor float64
}

// table holds the fixed descriptors for one kind, indexed by unit constant.
type table []entry

func (t table) valid(i int) bool {
	return i >= 0 && i < len(t)
}

func (t table) name(i int, typeName string) string {
	if !t.valid(i) {
		return fmt.Sprintf("%s(%d)", typeName, i)
	}
	return t[i].name
}

func (t table) factor(i int) float64 {
	if !t.valid(i) {
		return math.NaN()
	}
	return t[i].factor
}
