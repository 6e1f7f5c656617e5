package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompoundFactor(t *testing.T) {
	tests := []struct {
		name     string
		rate     decimal.Decimal
		periods  int
		expected float64
		delta    float64
	}{
		{
			name:     "one percent monthly over a year",
			rate:     decimal.NewFromFloat(0.01),
			periods:  12,
			expected: 1.12682503,
			delta:    1e-6,
		},
		{
			name:     "one percent monthly over ten years",
			rate:     decimal.NewFromFloat(0.01),
			periods:  120,
			expected: 3.30038689,
			delta:    1e-5,
		},
		{
			name:     "zero rate stays at one",
			rate:     decimal.Zero,
			periods:  240,
			expected: 1.0,
			delta:    0,
		},
		{
			name:     "zero periods stays at one",
			rate:     decimal.NewFromFloat(0.05),
			periods:  0,
			expected: 1.0,
			delta:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompoundFactor(tt.rate, tt.periods)
			f, _ := result.Float64()
			assert.InDelta(t, tt.expected, f, tt.delta)
		})
	}
}

func TestCompoundFactor_LongHorizonStaysFinite(t *testing.T) {
	// 600 months at a high monthly rate must still produce a usable number.
	result := CompoundFactor(decimal.NewFromFloat(0.02), 600)
	assert.True(t, result.IsPositive())
	assert.True(t, result.GreaterThan(decimal.NewFromInt(1)))
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		places   int32
		expected decimal.Decimal
	}{
		{
			name:     "round half up",
			value:    decimal.NewFromFloat(110000.005),
			places:   2,
			expected: decimal.NewFromFloat(110000.01),
		},
		{
			name:     "round down",
			value:    decimal.NewFromFloat(40279.164),
			places:   2,
			expected: decimal.NewFromFloat(40279.16),
		},
		{
			name:     "whole currency",
			value:    decimal.NewFromFloat(1234.56),
			places:   0,
			expected: decimal.NewFromInt(1235),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundMoney(tt.value, tt.places)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestDecimalFromString(t *testing.T) {
	d, err := DecimalFromString("5000000")
	assert.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(5000000)))

	_, err = DecimalFromString("not-a-number")
	assert.Error(t, err)
}
