package quantity

import (
	"reflect"
	"strconv"
	"strings"

	"quantity-measurement/core/units"
	qerrors "quantity-measurement/internal/errors"
)

// Measure is a quantity whose kind is only known at runtime, such as one
// parsed from user input. Every Quantity implements it. Operations across
// kinds fail with KIND_MISMATCH instead of failing to compile.
type Measure interface {
	Value() float64
	Kind() units.Kind
	UnitDescriptor() units.Descriptor
	ToBase() float64
	String() string

	// EqualsMeasure is false for any operand of another kind
	EqualsMeasure(other Measure) bool

	ConvertToUnit(target units.Descriptor) (Measure, error)
	AddMeasure(other Measure) (Measure, error)
	AddMeasureIn(other Measure, target units.Descriptor) (Measure, error)
}

var (
	_ Measure = Weight{}
	_ Measure = Length{}
	_ Measure = Volume{}
	_ Measure = (*Weight)(nil)
)

// EqualsMeasure implements Measure
func (q Quantity[U]) EqualsMeasure(other Measure) bool {
	o, err := q.operand(other)
	return err == nil && q.Equals(o)
}

// ConvertToUnit implements Measure
func (q Quantity[U]) ConvertToUnit(target units.Descriptor) (Measure, error) {
	u, err := q.sameKindUnit(target)
	if err != nil {
		return nil, err
	}
	return q.ConvertTo(u), nil
}

// AddMeasure implements Measure
func (q Quantity[U]) AddMeasure(other Measure) (Measure, error) {
	return q.AddMeasureIn(other, q.unit)
}

// AddMeasureIn implements Measure
func (q Quantity[U]) AddMeasureIn(other Measure, target units.Descriptor) (Measure, error) {
	o, err := q.operand(other)
	if err != nil {
		return nil, err
	}
	u, err := q.sameKindUnit(target)
	if err != nil {
		return nil, err
	}
	return q.AddIn(o, u), nil
}

// operand accepts a quantity of the receiver's kind, by value or through a
// non-nil pointer.
func (q Quantity[U]) operand(other Measure) (Quantity[U], error) {
	switch o := other.(type) {
	case Quantity[U]:
		return o, nil
	case *Quantity[U]:
		if o != nil {
			return *o, nil
		}
	}
	if isNil(other) {
		return Quantity[U]{}, qerrors.Input("missing operand")
	}
	return Quantity[U]{}, qerrors.KindMismatch(q.Kind().String(), other.Kind().String())
}

// isNil reports whether m is nil or wraps a nil pointer
func isNil(m Measure) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (q Quantity[U]) sameKindUnit(target units.Descriptor) (U, error) {
	var zero U
	if target == nil {
		return zero, qerrors.Input("missing target unit")
	}
	u, ok := target.(U)
	if !ok {
		return zero, qerrors.KindMismatch(q.Kind().String(), target.Kind().String())
	}
	if !u.Valid() {
		return zero, qerrors.InvalidUnit(u.Name())
	}
	return u, nil
}

// NewMeasure creates the quantity matching the descriptor's concrete unit type.
func NewMeasure(value float64, unit units.Descriptor) (Measure, error) {
	switch u := unit.(type) {
	case units.WeightUnit:
		return newMeasure(value, u)
	case units.LengthUnit:
		return newMeasure(value, u)
	case units.VolumeUnit:
		return newMeasure(value, u)
	case nil:
		return nil, qerrors.Input("missing unit")
	}
	return nil, qerrors.NotSupported("quantity of unit " + unit.Name())
}

func newMeasure[U units.Unit](value float64, unit U) (Measure, error) {
	q, err := New(value, unit)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ParseMeasure parses a literal such as "1000 GRAM" or "2.5 feet".
func ParseMeasure(s string) (Measure, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, qerrors.Parsing("expected \"<value> <unit>\"", nil).WithContext("input", s)
	}

	value, err := ParseValue(fields[0])
	if err != nil {
		return nil, err
	}

	unit, err := units.Lookup(fields[1])
	if err != nil {
		return nil, err
	}

	return NewMeasure(value, unit)
}

// ParseValue parses a numeric literal. Out-of-range literals become
// infinities, which quantity construction then rejects as INVALID_VALUE.
func ParseValue(s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return value, nil
		}
		return 0, qerrors.Parsing("invalid number "+strconv.Quote(s), err)
	}
	return value, nil
}

// ConvertValue is Convert for units only known at runtime.
func ConvertValue(value float64, from, to units.Descriptor) (float64, error) {
	m, err := NewMeasure(value, from)
	if err != nil {
		return 0, err
	}
	converted, err := m.ConvertToUnit(to)
	if err != nil {
		return 0, err
	}
	return converted.Value(), nil
}
