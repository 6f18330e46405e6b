package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice_WholeDollarAmount(t *testing.T) {
	assert.Equal(t, "$29", FormatPrice(2900))
	assert.Equal(t, "$0", FormatPrice(0))
	assert.Equal(t, "$1000", FormatPrice(100000))
}

func TestFormatPrice_FractionalAmount(t *testing.T) {
	assert.Equal(t, "$29.99", FormatPrice(2999))
	assert.Equal(t, "$0.01", FormatPrice(1))
	assert.Equal(t, "$9.05", FormatPrice(905))
}

func TestFormatPrice_NegativeClampsToZero(t *testing.T) {
	assert.Equal(t, "$0", FormatPrice(-500))
}

func TestCalculateSavingRate(t *testing.T) {
	tests := []struct {
		name         string
		monthlyPrice int64
		totalPrice   int64
		months       int
		want         int
	}{
		{"yearly discount", 2900, 29000, 12, 17},
		{"no discount", 1000, 12000, 12, 0},
		{"half price", 1000, 6000, 12, 50},
		{"single month is never discounted", 2900, 2900, 1, 0},
		{"zero months", 2900, 2900, 0, 0},
		{"zero monthly price", 0, 5000, 12, 0},
		{"more expensive than monthly", 1000, 15000, 12, 0},
		{"free bundle clamps to 100", 1000, 0, 12, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateSavingRate(tc.monthlyPrice, tc.totalPrice, tc.months)
			assert.Equal(t, tc.want, got)
		})
	}
}
