package controllers

import (
	"testing"
	"tradepro-backend/billing"
	"tradepro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resubmittedRows models a client loading a persisted document and
// sending its item rows back unchanged.
func resubmittedRows(rows []models.EstimateItem) []billing.LineItem {
	items := make([]billing.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, billing.LineItem{
			Description: row.Description,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		})
	}
	return items
}

func TestEstimateItemsResubmitRoundTrip(t *testing.T) {
	submitted := []billing.LineItem{
		{Description: "Demo and haul away", Quantity: 1, UnitPrice: 450},
		{Description: "", Quantity: 1, UnitPrice: 0},
		{Description: "Framing labor", Quantity: 16, UnitPrice: 85},
	}

	estimateID := uuid.New()
	first := billing.SanitizeItems(submitted)
	rows := newEstimateItems(estimateID, first)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, estimateID, row.EstimateID)
	}

	// Resubmitting the persisted rows unchanged reproduces the same item
	// set and the same totals
	second := billing.SanitizeItems(resubmittedRows(rows))
	assert.Equal(t, first, second)
	assert.Equal(t, billing.ComputeTotals(first, 8), billing.ComputeTotals(second, 8))

	rebuilt := newEstimateItems(estimateID, second)
	require.Len(t, rebuilt, len(rows))
	for i := range rows {
		assert.Equal(t, rows[i].Description, rebuilt[i].Description)
		assert.Equal(t, rows[i].Quantity, rebuilt[i].Quantity)
		assert.Equal(t, rows[i].UnitPrice, rebuilt[i].UnitPrice)
		assert.Equal(t, rows[i].Amount, rebuilt[i].Amount)
	}
}

func TestNewInvoiceItemsCarriesAmounts(t *testing.T) {
	invoiceID := uuid.New()
	rows := newInvoiceItems(invoiceID, []billing.LineItem{
		{Description: "Progress billing", Quantity: 1, UnitPrice: 250},
		{Description: "Permit fee", Quantity: 2, UnitPrice: 75.50},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, invoiceID, rows[0].InvoiceID)
	assert.Equal(t, 250.0, rows[0].Amount)
	assert.Equal(t, 151.0, rows[1].Amount)
}
