package units

// VolumeUnit is a unit of volume. The canonical unit is the litre.
type VolumeUnit int

const (
	Litre VolumeUnit = iota
	Millilitre
	Gallon
)

var volumeTable = table{
	Litre:      {"LITRE", 1.0},
	Millilitre: {"MILLILITRE", 0.001},
	Gallon:     {"GALLON", 3.78541},
}

func (u VolumeUnit) Name() string {
	return volumeTable.name(int(u), "VolumeUnit")
}

func (u VolumeUnit) ToBaseFactor() float64 {
	return volumeTable.factor(int(u))
}

func (u VolumeUnit) Kind() Kind {
	return KindVolume
}

func (u VolumeUnit) Valid() bool {
	return volumeTable.valid(int(u))
}

func (u VolumeUnit) String() string {
	return u.Name()
}

// VolumeUnits returns every volume unit in declaration order
func VolumeUnits() []VolumeUnit {
	return []VolumeUnit{Litre, Millilitre, Gallon}
}
