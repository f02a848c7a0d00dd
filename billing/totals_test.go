package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		taxRate  float64
		subtotal float64
		tax      float64
		total    float64
	}{
		{
			name: "two rows with 8 percent tax",
			items: []LineItem{
				{Description: "Labor", Quantity: 2, UnitPrice: 50},
				{Description: "Materials", Quantity: 1, UnitPrice: 25},
			},
			taxRate:  8,
			subtotal: 125,
			tax:      10,
			total:    135,
		},
		{
			name:     "no items",
			items:    nil,
			taxRate:  10,
			subtotal: 0,
			tax:      0,
			total:    0,
		},
		{
			name: "blank rows still contribute their numeric values",
			items: []LineItem{
				{Description: "", Quantity: 3, UnitPrice: 10},
				{Description: "Real row", Quantity: 1, UnitPrice: 5},
			},
			taxRate:  0,
			subtotal: 35,
			tax:      0,
			total:    35,
		},
		{
			name: "zero quantity placeholder",
			items: []LineItem{
				{Description: "Placeholder", Quantity: 0, UnitPrice: 100},
			},
			taxRate:  20,
			subtotal: 0,
			tax:      0,
			total:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items, tt.taxRate)
			assert.InDelta(t, tt.subtotal, got.Subtotal, tolerance)
			assert.InDelta(t, tt.tax, got.TaxAmount, tolerance)
			assert.InDelta(t, tt.total, got.Total, tolerance)
		})
	}
}

func TestComputeTotalsInvariant(t *testing.T) {
	items := []LineItem{
		{Description: "a", Quantity: 1.5, UnitPrice: 33.33},
		{Description: "b", Quantity: 7, UnitPrice: 0.07},
		{Description: "c", Quantity: 12, UnitPrice: 199.99},
	}
	for _, rate := range []float64{0, 0.5, 7.25, 8, 13, 100} {
		got := ComputeTotals(items, rate)
		assert.InDelta(t, got.Subtotal+got.Subtotal*rate/100, got.Total, tolerance)
	}
}

func TestComputeTotalsNeverNaN(t *testing.T) {
	items := []LineItem{
		{Description: "bad", Quantity: math.NaN(), UnitPrice: 10},
		{Description: "worse", Quantity: 2, UnitPrice: math.Inf(1)},
		{Description: "fine", Quantity: 2, UnitPrice: 5},
	}
	got := ComputeTotals(items, math.NaN())
	assert.False(t, math.IsNaN(got.Total))
	assert.InDelta(t, 10, got.Subtotal, tolerance)
	assert.InDelta(t, 10, got.Total, tolerance)
}

func TestSanitizeItems(t *testing.T) {
	items := []LineItem{
		{Description: "Keep me", Quantity: 1, UnitPrice: 10},
		{Description: "", Quantity: 1, UnitPrice: 99},
		{Description: "   ", Quantity: 2, UnitPrice: 50},
		{Description: "Also kept", Quantity: 0, UnitPrice: 0},
	}

	kept := SanitizeItems(items)
	assert.Len(t, kept, 2)
	assert.Equal(t, "Keep me", kept[0].Description)
	assert.Equal(t, "Also kept", kept[1].Description)
}

func TestSanitizeItemsAllBlank(t *testing.T) {
	items := []LineItem{
		{Description: ""},
		{Description: "  \t "},
	}
	kept := SanitizeItems(items)
	assert.Empty(t, kept)
	assert.NotNil(t, kept)
}

func TestSanitizeItemsIdempotent(t *testing.T) {
	items := []LineItem{
		{Description: "Labor", Quantity: 2, UnitPrice: 50},
		{Description: "", Quantity: 1, UnitPrice: 99},
		{Description: "Materials", Quantity: 1, UnitPrice: 25},
		{Description: " "},
	}

	once := SanitizeItems(items)
	twice := SanitizeItems(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, ComputeTotals(once, 8), ComputeTotals(twice, 8))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 12.5, ParseAmount("12.5"))
	assert.Equal(t, 100.0, ParseAmount(" 100 "))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("NaN"))
	assert.Equal(t, 0.0, ParseAmount("Inf"))
}
