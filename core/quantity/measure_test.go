package quantity

import (
	"testing"

	"quantity-measurement/core/units"
	qerrors "quantity-measurement/internal/errors"
)

func TestParseMeasure(t *testing.T) {
	tests := []struct {
		input string
		want  Measure
	}{
		{"1000 GRAM", MustNew(1000.0, units.Gram)},
		{"1 kilogram", MustNew(1.0, units.Kilogram)},
		{"  2.5   Feet ", MustNew(2.5, units.Feet)},
		{"-1e3 inches", MustNew(-1000.0, units.Inches)},
		{"3.78541 LITRE", MustNew(3.78541, units.Litre)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMeasure(tt.input)
			if err != nil {
				t.Fatalf("ParseMeasure(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMeasure(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMeasureErrors(t *testing.T) {
	tests := []struct {
		input string
		want  qerrors.Type
	}{
		{"", qerrors.TypeParsing},
		{"1000", qerrors.TypeParsing},
		{"1000 GRAM extra", qerrors.TypeParsing},
		{"ten GRAM", qerrors.TypeParsing},
		{"10 STONE", qerrors.TypeUnknownUnit},
		{"NaN GRAM", qerrors.TypeInvalidValue},
		{"Inf FEET", qerrors.TypeInvalidValue},
		{"1e400 FEET", qerrors.TypeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMeasure(tt.input)
			if !qerrors.IsType(err, tt.want) {
				t.Errorf("ParseMeasure(%q) error = %v, want %s", tt.input, err, tt.want)
			}
			if m != nil {
				t.Errorf("ParseMeasure(%q) returned %v alongside an error", tt.input, m)
			}
		})
	}
}

func TestNewMeasure(t *testing.T) {
	m, err := NewMeasure(2.0, units.Yards)
	if err != nil {
		t.Fatalf("NewMeasure: %v", err)
	}
	if _, ok := m.(Length); !ok {
		t.Errorf("NewMeasure(YARDS) built %T", m)
	}
	if m.Kind() != units.KindLength || m.UnitDescriptor() != units.Yards || m.ToBase() != 72.0 {
		t.Errorf("unexpected measure %v", m)
	}

	if _, err := NewMeasure(1, nil); !qerrors.IsType(err, qerrors.TypeInput) {
		t.Errorf("nil unit error = %v", err)
	}
}

func TestEqualsMeasure(t *testing.T) {
	grams, _ := ParseMeasure("1000 GRAM")
	kilograms, _ := ParseMeasure("1 KILOGRAM")
	inches, _ := ParseMeasure("1000 INCHES")
	litres, _ := ParseMeasure("1000 LITRE")

	if !grams.EqualsMeasure(kilograms) || !kilograms.EqualsMeasure(grams) {
		t.Error("1000 GRAM should equal 1 KILOGRAM")
	}
	// Same canonical value, different kinds.
	if grams.EqualsMeasure(inches) || grams.EqualsMeasure(litres) || inches.EqualsMeasure(grams) {
		t.Error("quantities of different kinds compared equal")
	}
	if grams.EqualsMeasure(nil) {
		t.Error("quantity equals nil")
	}
}

func TestAddMeasureKindMismatch(t *testing.T) {
	weight, _ := ParseMeasure("1 KILOGRAM")
	length, _ := ParseMeasure("1 FEET")

	if _, err := weight.AddMeasure(length); !qerrors.IsType(err, qerrors.TypeKindMismatch) {
		t.Errorf("AddMeasure across kinds error = %v, want KIND_MISMATCH", err)
	}
	if _, err := weight.AddMeasureIn(weight, units.Feet); !qerrors.IsType(err, qerrors.TypeKindMismatch) {
		t.Errorf("AddMeasureIn with foreign target error = %v, want KIND_MISMATCH", err)
	}
	if _, err := weight.ConvertToUnit(units.Litre); !qerrors.IsType(err, qerrors.TypeKindMismatch) {
		t.Errorf("ConvertToUnit with foreign target error = %v, want KIND_MISMATCH", err)
	}
	if _, err := weight.AddMeasure(nil); !qerrors.IsType(err, qerrors.TypeInput) {
		t.Errorf("AddMeasure(nil) error = %v", err)
	}
	if _, err := weight.ConvertToUnit(nil); !qerrors.IsType(err, qerrors.TypeInput) {
		t.Errorf("ConvertToUnit(nil) error = %v", err)
	}
}

func TestAddMeasure(t *testing.T) {
	yard, _ := ParseMeasure("1 YARDS")
	feet, _ := ParseMeasure("3 FEET")

	sum, err := yard.AddMeasure(feet)
	if err != nil {
		t.Fatalf("AddMeasure: %v", err)
	}
	if sum != MustNew(2.0, units.Yards) {
		t.Errorf("1 YARDS + 3 FEET = %v", sum)
	}

	sum, err = yard.AddMeasureIn(feet, units.Feet)
	if err != nil {
		t.Fatalf("AddMeasureIn: %v", err)
	}
	if sum != MustNew(6.0, units.Feet) {
		t.Errorf("1 YARDS + 3 FEET in FEET = %v", sum)
	}

	if _, err := yard.AddMeasureIn(feet, units.LengthUnit(8)); !qerrors.IsType(err, qerrors.TypeInvalidUnit) {
		t.Errorf("undeclared target error = %v", err)
	}
}

func TestMeasurePointerOperands(t *testing.T) {
	kg := MustNew(1.0, units.Kilogram)
	grams := MustNew(1000.0, units.Gram)

	sum, err := kg.AddMeasure(&grams)
	if err != nil {
		t.Fatalf("AddMeasure(&grams): %v", err)
	}
	if sum != MustNew(2.0, units.Kilogram) {
		t.Errorf("1 KILOGRAM + &1000 GRAM = %v", sum)
	}

	if !kg.EqualsMeasure(&grams) {
		t.Error("EqualsMeasure(&grams) = false")
	}
	if kg.EqualsMeasure(&grams) != kg.EqualsAny(&grams) {
		t.Error("EqualsMeasure and EqualsAny disagree on a pointer operand")
	}

	var missing *Weight
	if _, err := kg.AddMeasure(missing); !qerrors.IsType(err, qerrors.TypeInput) {
		t.Errorf("AddMeasure(nil *Weight) error = %v, want INPUT_ERROR", err)
	}
	var missingLength *Length
	if _, err := kg.AddMeasureIn(missingLength, units.Gram); !qerrors.IsType(err, qerrors.TypeInput) {
		t.Errorf("AddMeasureIn(nil *Length) error = %v, want INPUT_ERROR", err)
	}
	if kg.EqualsMeasure(missing) {
		t.Error("EqualsMeasure(nil *Weight) = true")
	}

	feet := MustNew(1.0, units.Feet)
	if _, err := kg.AddMeasure(&feet); !qerrors.IsType(err, qerrors.TypeKindMismatch) {
		t.Errorf("AddMeasure(&feet) error = %v, want KIND_MISMATCH", err)
	}
}

func TestConvertValue(t *testing.T) {
	got, err := ConvertValue(1000.0, units.Gram, units.Kilogram)
	if err != nil || got != 1.0 {
		t.Errorf("ConvertValue(1000 GRAM -> KILOGRAM) = %v, %v", got, err)
	}

	for _, from := range units.All() {
		for _, to := range units.ByKind(from.Kind()) {
			got, err := ConvertValue(2.20462, from, to)
			if err != nil {
				t.Fatalf("ConvertValue(%s -> %s): %v", from.Name(), to.Name(), err)
			}
			m, _ := NewMeasure(2.20462, from)
			want, _ := m.ConvertToUnit(to)
			if got != want.Value() {
				t.Errorf("ConvertValue(%s -> %s) = %v, want %v", from.Name(), to.Name(), got, want.Value())
			}
		}
	}

	if _, err := ConvertValue(1, units.Gram, units.Inches); !qerrors.IsType(err, qerrors.TypeKindMismatch) {
		t.Errorf("cross-kind ConvertValue error = %v", err)
	}
}
