package utils

import (
	"fmt"
	"math"
)

// FormatPrice formats a price in cents for display.
// Whole dollar amounts drop the decimals: 2900 -> "$29", 2999 -> "$29.99".
func FormatPrice(priceCents int64) string {
	if priceCents < 0 {
		priceCents = 0
	}

	dollars := priceCents / 100
	cents := priceCents % 100

	if cents == 0 {
		return fmt.Sprintf("$%d", dollars)
	}
	return fmt.Sprintf("$%d.%02d", dollars, cents)
}

// CalculateSavingRate calculates the discount percentage when buying a
// multi-month billing cycle instead of paying the monthly price each month.
// monthlyPrice and totalPrice are in cents; months is the cycle multiplier.
// Returns a rounded integer percentage in [0, 100].
// For example, monthly 2900 and total 29000 over 12 months saves
// round((34800-29000)/34800*100) = 17%.
func CalculateSavingRate(monthlyPrice, totalPrice int64, months int) int {
	if months <= 1 {
		return 0
	}

	if monthlyPrice <= 0 {
		return 0
	}

	expectedTotalPrice := monthlyPrice * int64(months)
	if expectedTotalPrice == 0 {
		return 0
	}

	savings := expectedTotalPrice - totalPrice

	savingRate := int(math.Round(float64(savings) / float64(expectedTotalPrice) * 100.0))

	if savingRate < 0 {
		return 0
	}
	if savingRate > 100 {
		return 100
	}

	return savingRate
}
