package stock

import (
	"fmt"
	"strconv"
)

const (
	UnitGram       = "g"
	UnitKilogram   = "kg"
	UnitMilliliter = "ml"
	UnitLiter      = "liter"
	UnitPiece      = "piece"

	DefaultUnit = UnitPiece

	UsageDay   = "day"
	UsageMonth = "month"
	UsageYear  = "year"
)

// thousandBacked reports whether a unit stores its value multiplied by 1000
// (kilograms as grams, liters as milliliters).
func thousandBacked(unit string) bool {
	return unit == UnitKilogram || unit == UnitLiter
}

// ToBaseUnit converts a user-entered quantity to the stored base unit.
func ToBaseUnit(value float64, unit string) float64 {
	if thousandBacked(unit) {
		return value * 1000
	}
	return value
}

// OneUnitBase is the base-unit equivalent of "1 unit" in the item's own unit,
// the threshold below which a quantity counts as low.
func OneUnitBase(unit string) float64 {
	return ToBaseUnit(1, unit)
}

// FormatQuantity renders a stored base-unit quantity for display: thousand-backed
// units divided back down with two decimals, everything else as-is.
func FormatQuantity(value float64, unit string) string {
	if thousandBacked(unit) {
		return fmt.Sprintf("%.2f %s", value/1000, unit)
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + unit
}

// UsageToDays normalizes a usage horizon to days: months count as 30 days,
// years as 365, anything else is taken literally.
func UsageToDays(value float64, unit string) int {
	switch unit {
	case UsageMonth:
		return int(value * 30)
	case UsageYear:
		return int(value * 365)
	default:
		return int(value)
	}
}

// FormatDaysLeft buckets a day count into the coarsest whole unit. Lossy by
// design: 370 days is "1 year(s)", not "1 year 5 days".
func FormatDaysLeft(days int) string {
	switch {
	case days >= 365:
		return fmt.Sprintf("%d year(s)", days/365)
	case days >= 30:
		return fmt.Sprintf("%d month(s)", days/30)
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}
