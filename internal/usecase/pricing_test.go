package usecase

import (
	"testing"

	"kaenpro_os/internal/domain/entities"
)

func TestComputeTotal(t *testing.T) {
	items := []entities.OSItem{
		{Description: "FILTRO DE ÓLEO", Quantity: 2, UnitPrice: 25},
		{Description: "VELA DE IGNIÇÃO", Quantity: 4, UnitPrice: 12.5},
	}

	t.Run("items plus labor minus discount", func(t *testing.T) {
		got := ComputeTotal(items, 50, 10)
		if got != 140 {
			t.Fatalf("expected 140, got %v", got)
		}
	})

	t.Run("no items", func(t *testing.T) {
		got := ComputeTotal(nil, 80, 0)
		if got != 80 {
			t.Fatalf("expected 80, got %v", got)
		}
	})

	t.Run("zero quantity contributes nothing", func(t *testing.T) {
		got := ComputeTotal([]entities.OSItem{{Quantity: 0, UnitPrice: 999}}, 0, 0)
		if got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})

	t.Run("discount larger than subtotal goes negative", func(t *testing.T) {
		got := ComputeTotal(items, 0, 500)
		if got != -400 {
			t.Fatalf("expected -400, got %v", got)
		}
	})
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"150", 150},
		{"150.75", 150.75},
		{" 42 ", 42},
		{"-10", -10},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
