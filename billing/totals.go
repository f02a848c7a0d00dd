// Package billing holds the pure document math shared by estimates and
// invoices: line-item totals, blank-row filtering, and the percentage
// derivation used when generating an invoice from an approved estimate.
package billing

import (
	"math"
	"strconv"
	"strings"
)

// LineItem is one row of an estimate or invoice being assembled.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Amount is the row's extended price.
func (li LineItem) Amount() float64 {
	return sanitize(li.Quantity) * sanitize(li.UnitPrice)
}

// Totals are the derived monetary aggregates of a document. Values are
// not rounded; presentation rounds to two decimals.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// ComputeTotals sums every row, including blank placeholder rows, and
// applies taxRate as a percentage of the subtotal.
func ComputeTotals(items []LineItem, taxRate float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}
	taxAmount := subtotal * sanitize(taxRate) / 100
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}

// SanitizeItems drops rows whose description is empty or whitespace-only.
// Placeholder rows added in the editor but never filled in are not
// persisted; an all-blank submission yields an empty slice.
func SanitizeItems(items []LineItem) []LineItem {
	kept := make([]LineItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			continue
		}
		item.Quantity = sanitize(item.Quantity)
		item.UnitPrice = sanitize(item.UnitPrice)
		kept = append(kept, item)
	}
	return kept
}

// ParseAmount parses a numeric form/query value, coercing anything
// malformed or non-finite to 0 so NaN never reaches a total.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
