package units

// WeightUnit is a unit of weight. The canonical unit is the gram.
type WeightUnit int

const (
	Gram WeightUnit = iota
	Kilogram
	Pound
)

var weightTable = table{
	Gram:     {"GRAM", 1.0},
	Kilogram: {"KILOGRAM", 1000.0},
	Pound:    {"POUND", 453.592},
}

func (u WeightUnit) Name() string {
	return weightTable.name(int(u), "WeightUnit")
}

func (u WeightUnit) ToBaseFactor() float64 {
	return weightTable.factor(int(u))
}

func (u WeightUnit) Kind() Kind {
	return KindWeight
}

func (u WeightUnit) Valid() bool {
	return weightTable.valid(int(u))
}

func (u WeightUnit) String() string {
	return u.Name()
}

// WeightUnits returns every weight unit in declaration order
func WeightUnits() []WeightUnit {
	return []WeightUnit{Gram, Kilogram, Pound}
}
