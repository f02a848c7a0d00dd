package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePercentage(t *testing.T) {
	valid := []float64{0.01, 1, 25, 50.5, 99.99, 100}
	for _, p := range valid {
		assert.NoError(t, ValidatePercentage(p), "percentage %v", p)
	}

	invalid := []float64{0, -1, 100.0001, 101, 1000, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, p := range invalid {
		assert.ErrorIs(t, ValidatePercentage(p), ErrInvalidPercentage, "percentage %v", p)
	}
}

func TestPercentageAmount(t *testing.T) {
	assert.InDelta(t, 250, PercentageAmount(1000, 25), tolerance)
	assert.InDelta(t, 1000, PercentageAmount(1000, 100), tolerance)
	assert.InDelta(t, 12.5, PercentageAmount(100, 12.5), tolerance)
	assert.InDelta(t, 0, PercentageAmount(0, 50), tolerance)
}

func TestDefaultInvoiceTitle(t *testing.T) {
	assert.Equal(t, "25% of Kitchen remodel", DefaultInvoiceTitle(25, "Kitchen remodel"))
	assert.Equal(t, "12.5% of Deck build", DefaultInvoiceTitle(12.5, "Deck build"))
	assert.Equal(t, "100% of Re-roof", DefaultInvoiceTitle(100, "Re-roof"))
}
