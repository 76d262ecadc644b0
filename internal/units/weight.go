// Package units provides weight unit conversion and static volume lookup
// tables. Everything here is pure and stateless.
package units

import (
	"fmt"
	"math"
)

// Unit is the display weight unit.
type Unit int

const (
	Grams Unit = iota
	Ounces
)

const gramsPerOunce = 28.3495

// String returns the persisted/display name of the unit.
func (u Unit) String() string {
	if u == Ounces {
		return "ounces"
	}
	return "grams"
}

// Suffix returns the short label appended after a weight value.
func (u Unit) Suffix() string {
	if u == Ounces {
		return "oz"
	}
	return "g"
}

// ParseUnit converts a persisted unit name back to a Unit.
// Returns false for unrecognized names.
func ParseUnit(name string) (Unit, bool) {
	switch name {
	case "grams", "g":
		return Grams, true
	case "ounces", "oz":
		return Ounces, true
	default:
		return Grams, false
	}
}

// ConvertWeight converts a gram value to the given unit with that unit's
// display rounding: ounces to one decimal, grams to the nearest whole.
func ConvertWeight(grams float64, unit Unit) float64 {
	if unit == Ounces {
		return math.Round(grams/gramsPerOunce*10) / 10
	}
	return math.Round(grams)
}

// FormatWeight renders a gram value in the given unit with its suffix.
func FormatWeight(grams float64, unit Unit) string {
	v := ConvertWeight(grams, unit)
	if unit == Ounces {
		return fmt.Sprintf("%.1f %s", v, unit.Suffix())
	}
	return fmt.Sprintf("%.0f %s", v, unit.Suffix())
}

// FormatWeightPrecise renders a weight keeping one decimal place for doses
// under 10 grams, whatever the unit. Whole-gram rounding on a 1.8 g yeast
// dose would be misleading.
func FormatWeightPrecise(grams float64, unit Unit) string {
	if unit == Ounces {
		return fmt.Sprintf("%.1f %s", math.Round(grams/gramsPerOunce*10)/10, unit.Suffix())
	}
	if grams < 10 {
		return fmt.Sprintf("%.1f %s", math.Round(grams*10)/10, unit.Suffix())
	}
	return fmt.Sprintf("%.0f %s", math.Round(grams), unit.Suffix())
}
