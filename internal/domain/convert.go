package domain

import "errors"

const kgToLb = 2.2046226218

// WeightUnit is the unit a weight is entered or displayed in. Days always
// store kilograms.
type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"
)

// ParseWeightUnit defaults an empty string to kilograms.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch WeightUnit(s) {
	case "", Kilograms:
		return Kilograms, nil
	case Pounds:
		return Pounds, nil
	}
	return "", errors.New("unit must be \"kg\" or \"lb\"")
}

// ToKilograms converts v expressed in u to kilograms.
func (u WeightUnit) ToKilograms(v float64) float64 {
	if u == Pounds {
		return v / kgToLb
	}
	return v
}

// FromKilograms converts kg to u.
func (u WeightUnit) FromKilograms(kg float64) float64 {
	if u == Pounds {
		return kg * kgToLb
	}
	return kg
}
