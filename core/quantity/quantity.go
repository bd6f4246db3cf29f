// Package quantity provides immutable measured amounts tagged with a unit.
//
// A Quantity is parametric over its unit type, so quantities of different
// kinds (weight, length, volume) cannot be compared or added: the call does
// not compile. Every comparison and sum goes through the value expressed in
// the kind's canonical unit, which keeps conversion factors in the unit
// tables and nowhere else.
package quantity

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"quantity-measurement/core/units"
	qerrors "quantity-measurement/internal/errors"
)

// Quantity is an immutable (value, unit) pair
type Quantity[U units.Unit] struct {
	value float64
	unit  U
}

// Weight, Length and Volume are the quantity types of the declared kinds
type (
	Weight = Quantity[units.WeightUnit]
	Length = Quantity[units.LengthUnit]
	Volume = Quantity[units.VolumeUnit]
)

// New creates a quantity. The value must be finite and the unit one of the
// declared constants.
func New[U units.Unit](value float64, unit U) (Quantity[U], error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Quantity[U]{}, qerrors.InvalidValue(value).WithContext("unit", unit.Name())
	}
	if !unit.Valid() {
		return Quantity[U]{}, qerrors.InvalidUnit(unit.Name())
	}
	return Quantity[U]{value: value, unit: unit}, nil
}

// MustNew is like New but panics on invalid input
func MustNew[U units.Unit](value float64, unit U) Quantity[U] {
	q, err := New(value, unit)
	if err != nil {
		panic(fmt.Sprintf("invalid quantity: %v", err))
	}
	return q
}

// Value returns the numeric value in the quantity's own unit
func (q Quantity[U]) Value() float64 {
	return q.value
}

// Unit returns the quantity's unit
func (q Quantity[U]) Unit() U {
	return q.unit
}

// UnitDescriptor returns the unit as a Descriptor
func (q Quantity[U]) UnitDescriptor() units.Descriptor {
	return q.unit
}

// Kind returns the unit kind
func (q Quantity[U]) Kind() units.Kind {
	return q.unit.Kind()
}

// ToBase returns the value expressed in the kind's canonical unit.
func (q Quantity[U]) ToBase() float64 {
	// The conversion forces rounding so the product is never fused into a
	// following addition.
	return float64(q.value * q.unit.ToBaseFactor())
}

// Equals reports whether both quantities have exactly the same canonical value.
func (q Quantity[U]) Equals(other Quantity[U]) bool {
	if q == other {
		return true
	}
	return q.ToBase() == other.ToBase()
}

// EqualsAny is Equals for an arbitrary value. Anything that is not a
// quantity of the same kind is unequal.
func (q Quantity[U]) EqualsAny(other any) bool {
	switch o := other.(type) {
	case Quantity[U]:
		return q.Equals(o)
	case *Quantity[U]:
		return o != nil && q.Equals(*o)
	}
	return false
}

// ConvertTo returns the same amount expressed in target.
// It panics if target is not a declared unit.
func (q Quantity[U]) ConvertTo(target U) Quantity[U] {
	mustValid(target)
	return Quantity[U]{value: q.ToBase() / target.ToBaseFactor(), unit: target}
}

// Add returns the sum in the receiver's unit.
func (q Quantity[U]) Add(other Quantity[U]) Quantity[U] {
	return q.AddIn(other, q.unit)
}

// AddIn returns the sum expressed in target.
// It panics if target is not a declared unit.
func (q Quantity[U]) AddIn(other Quantity[U], target U) Quantity[U] {
	mustValid(target)
	sum := q.ToBase() + other.ToBase()
	return Quantity[U]{value: sum / target.ToBaseFactor(), unit: target}
}

// Decimal returns the value as a decimal, for display rounding
func (q Quantity[U]) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(q.value)
}

// String formats the quantity as "<value> <UNIT>"
func (q Quantity[U]) String() string {
	return FormatValue(q.value) + " " + q.unit.Name()
}

// FormatValue prints v in its shortest exact decimal form
func FormatValue(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}

// Convert converts value from one unit to another of the same kind.
// It yields exactly New(value, from).ConvertTo(to).Value().
func Convert[U units.Unit](value float64, from, to U) (float64, error) {
	q, err := New(value, from)
	if err != nil {
		return 0, err
	}
	if !to.Valid() {
		return 0, qerrors.InvalidUnit(to.Name())
	}
	return q.ConvertTo(to).Value(), nil
}

func mustValid(u units.Descriptor) {
	if !u.Valid() {
		panic(fmt.Sprintf("quantity: undeclared unit %s", u.Name()))
	}
}
