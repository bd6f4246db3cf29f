package units

import (
	"strings"

	qerrors "quantity-measurement/internal/errors"
)

var byName map[string]Descriptor

func init() {
	byName = make(map[string]Descriptor)
	for _, d := range All() {
		byName[d.Name()] = d
	}
}

// Kinds returns every kind in a stable order
func Kinds() []Kind {
	return []Kind{KindWeight, KindLength, KindVolume}
}

// All returns every declared unit, grouped by kind in declaration order.
func All() []Descriptor {
	var all []Descriptor
	for _, k := range Kinds() {
		all = append(all, ByKind(k)...)
	}
	return all
}

// ByKind returns the units of one kind. Unknown kinds yield nil.
func ByKind(kind Kind) []Descriptor {
	switch kind {
	case KindWeight:
		return descriptors(WeightUnits())
	case KindLength:
		return descriptors(LengthUnits())
	case KindVolume:
		return descriptors(VolumeUnits())
	}
	return nil
}

// ParseKind resolves a kind name case-insensitively
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", qerrors.Newf(qerrors.TypeInput, "unknown kind: %q", name)
}

// Lookup resolves a unit by display name, ignoring case and surrounding space.
func Lookup(name string) (Descriptor, error) {
	d, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, qerrors.UnknownUnit(name)
	}
	return d, nil
}

func descriptors[U Unit](us []U) []Descriptor {
	out := make([]Descriptor, len(us))
	for i, u := range us {
		out[i] = u
	}
	return out
}
