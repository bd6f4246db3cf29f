package units

// LengthUnit is a unit of length. The canonical unit is the inch.
type LengthUnit int

const (
	Inches LengthUnit = iota
	Feet
	Yards
	Centimeters
)

var lengthTable = table{
	Inches:      {"INCHES", 1.0},
	Feet:        {"FEET", 12.0},
	Yards:       {"YARDS", 36.0},
	Centimeters: {"CENTIMETERS", 0.393701},
}

func (u LengthUnit) Name() string {
	return lengthTable.name(int(u), "LengthUnit")
}

func (u LengthUnit) ToBaseFactor() float64 {
	return lengthTable.factor(int(u))
}

func (u LengthUnit) Kind() Kind {
	return KindLength
}

func (u LengthUnit) Valid() bool {
	return lengthTable.valid(int(u))
}

func (u LengthUnit) String() string {
	return u.Name()
}

// LengthUnits returns every length unit in declaration order
func LengthUnits() []LengthUnit {
	return []LengthUnit{Inches, Feet, Yards, Centimeters}
}
