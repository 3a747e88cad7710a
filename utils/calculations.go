package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yourusername/invoicely/models"
)

// CalculateSubtotal sums quantity times price over all items. An empty
// list yields 0. Values are plain float64 throughout the calculation
// pipeline; nothing is rounded until formatting.
func CalculateSubtotal(items []models.InvoiceItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Quantity * item.Price
	}
	return sum
}

// CalculateTax returns subtotal * taxRate / 100. Rates outside [0,100]
// are not rejected here; range validation belongs to the caller.
func CalculateTax(subtotal, taxRate float64) float64 {
	return subtotal * taxRate / 100
}

// CalculateAdjustments sums the contribution of each adjustment
// against the given subtotal. Percentage adjustments contribute
// subtotal * amount / 100, flat ones contribute their amount;
// deductions are subtracted, additions added.
func CalculateAdjustments(subtotal float64, adjustments []models.Adjustment) float64 {
	var total float64
	for _, adj := range adjustments {
		amount := adj.Amount
		if adj.IsPercentage {
			amount = subtotal * adj.Amount / 100
		}
		if adj.Type == models.AdjustmentDeduction {
			total -= amount
		} else {
			total += amount
		}
	}
	return total
}

// CalculateTotal composes subtotal, tax and net adjustments into the
// grand total stored on the invoice.
func CalculateTotal(subtotal, taxRate float64, adjustments []models.Adjustment) float64 {
	return subtotal + CalculateTax(subtotal, taxRate) + CalculateAdjustments(subtotal, adjustments)
}

// ParseAmount coerces free-form numeric input. Anything that does not
// parse as a float comes back as 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// RoundTo2 rounds an amount to two decimal places (half away from
// zero). The calculation functions above never call this; it is an
// opt-in for callers that want cent-aligned display values.
func RoundTo2(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return v
}
