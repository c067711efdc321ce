package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBaseUnit(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  float64
	}{
		{"kg stored as grams", 2, UnitKilogram, 2000},
		{"liter stored as milliliters", 1.5, UnitLiter, 1500},
		{"grams stored as-is", 500, UnitGram, 500},
		{"milliliters stored as-is", 250, UnitMilliliter, 250},
		{"pieces stored as-is", 3, UnitPiece, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBaseUnit(tt.value, tt.unit))
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  string
	}{
		{"kg displayed with two decimals", 2000, UnitKilogram, "2.00 kg"},
		{"liter displayed with two decimals", 1500, UnitLiter, "1.50 liter"},
		{"grams displayed raw", 500, UnitGram, "500 g"},
		{"pieces displayed raw", 3, UnitPiece, "3 piece"},
		{"fractional pieces keep precision", 0.5, UnitPiece, "0.5 piece"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuantity(tt.value, tt.unit))
		})
	}
}

func TestQuantityRoundTrip(t *testing.T) {
	stored := ToBaseUnit(2, UnitKilogram)
	assert.Equal(t, float64(2000), stored)
	assert.Equal(t, "2.00 kg", FormatQuantity(stored, UnitKilogram))
}

func TestUsageToDays(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
		want  int
	}{
		{"months are thirty days", 2, UsageMonth, 60},
		{"years are 365 days", 1, UsageYear, 365},
		{"days are literal", 5, UsageDay, 5},
		{"unknown unit taken as days", 7, "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UsageToDays(tt.value, tt.unit))
		})
	}
}

func TestFormatDaysLeft(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{400, "1 year(s)"},
		{365, "1 year(s)"},
		{730, "2 year(s)"},
		{45, "1 month(s)"},
		{30, "1 month(s)"},
		{29, "29 days"},
		{5, "5 days"},
		{1, "1 day"},
		{0, "0 days"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDaysLeft(tt.days), "days=%d", tt.days)
	}
}
