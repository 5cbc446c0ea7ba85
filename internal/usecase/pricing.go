package usecase

import (
	"math"
	"strconv"
	"strings"

	"kaenpro_os/internal/domain/entities"
)

// ComputeTotal derives the order total from the current line items and the
// scalar adjustments:
//
//	total = sum(quantity x unitPrice) + labor - discount
//
// There is no floor at zero: a discount larger than subtotal+labor yields a
// negative total, which is passed through untouched.
func ComputeTotal(items []entities.OSItem, laborValue, discount float64) float64 {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Quantity * it.UnitPrice
	}
	return subtotal + laborValue - discount
}

// ParseAmount converts free-text numeric input (labor/discount fields) to a
// value. Empty or non-numeric input counts as zero.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
