package billing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidPercentage rejects percentages outside (0, 100].
var ErrInvalidPercentage = errors.New("percentage must be greater than 0 and at most 100")

// ValidatePercentage checks that p is a finite number in (0, 100].
func ValidatePercentage(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 || p > 100 {
		return ErrInvalidPercentage
	}
	return nil
}

// PercentageAmount derives the invoice amount for a partial billing of an
// estimate total.
func PercentageAmount(totalAmount, percentage float64) float64 {
	return totalAmount * percentage / 100
}

// DefaultInvoiceTitle is used when no title override is supplied, e.g.
// "25% of Kitchen remodel".
func DefaultInvoiceTitle(percentage float64, estimateTitle string) string {
	return fmt.Sprintf("%s%% of %s", strconv.FormatFloat(percentage, 'f', -1, 64), estimateTitle)
}
