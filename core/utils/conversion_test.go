package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFloatOrZero(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"Plain", "1.5", 1.5},
		{"Integer", "42", 42},
		{"Whitespace", "  0.75  ", 0.75},
		{"Negative", "-2.5", -2.5},
		{"Empty", "", 0},
		{"Text", "N/A", 0},
		{"NaN", "NaN", 0},
		{"Infinity", "Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FloatOrZero(tt.raw))
		})
	}
}

func TestIntOrZero(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"Whole", "12", 12},
		{"FractionalTruncates", "12.9", 12},
		{"FractionalZero", "0.4", 0},
		{"ExportedAsFloat", "7.0", 7},
		{"Empty", "", 0},
		{"Text", "many", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntOrZero(tt.raw))
		})
	}
}

func TestDecimalOrZero(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want decimal.Decimal
	}{
		{"Money", "9.99", decimal.RequireFromString("9.99")},
		{"Whole", "10", decimal.NewFromInt(10)},
		{"Whitespace", " 4.50 ", decimal.RequireFromString("4.50")},
		{"Empty", "", decimal.Zero},
		{"Text", "POA", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(DecimalOrZero(tt.raw)), "got %s", DecimalOrZero(tt.raw))
		})
	}
}

func TestFlagSet(t *testing.T) {
	assert.True(t, FlagSet("1"))
	assert.True(t, FlagSet(" 1 "))
	assert.False(t, FlagSet("0"))
	assert.False(t, FlagSet(""))
	assert.False(t, FlagSet("true"))
}
