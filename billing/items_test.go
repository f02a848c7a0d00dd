package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemListSeedsBlankRow(t *testing.T) {
	l := NewItemList(nil)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, LineItem{Quantity: 1}, l.Items()[0])
}

func TestNewItemListKeepsExistingRows(t *testing.T) {
	rows := []LineItem{
		{Description: "Demo", Quantity: 2, UnitPrice: 40},
		{Description: "Haul-off", Quantity: 1, UnitPrice: 120},
	}
	l := NewItemList(rows)
	assert.Equal(t, rows, l.Items())
}

func TestItemListAddAppends(t *testing.T) {
	l := NewItemList([]LineItem{{Description: "First", Quantity: 1, UnitPrice: 10}})
	l.Add()
	require.Equal(t, 2, l.Len())
	assert.Equal(t, LineItem{Quantity: 1}, l.Items()[1])
}

func TestItemListUpdateTouchesOneField(t *testing.T) {
	l := NewItemList([]LineItem{{Description: "Rough-in", Quantity: 3, UnitPrice: 85}})

	l.SetQuantity(0, 5)
	got := l.Items()[0]
	assert.Equal(t, "Rough-in", got.Description)
	assert.Equal(t, 5.0, got.Quantity)
	assert.Equal(t, 85.0, got.UnitPrice)

	l.SetDescription(0, "Rough-in plumbing")
	l.SetUnitPrice(0, 90)
	got = l.Items()[0]
	assert.Equal(t, "Rough-in plumbing", got.Description)
	assert.Equal(t, 5.0, got.Quantity)
	assert.Equal(t, 90.0, got.UnitPrice)
}

func TestItemListRemoveNeverEmptiesList(t *testing.T) {
	l := NewItemList(nil)
	l.Add()
	l.Add()
	require.Equal(t, 3, l.Len())

	l.Remove(1)
	assert.Equal(t, 2, l.Len())
	l.Remove(0)
	assert.Equal(t, 1, l.Len())

	// Sole remaining row: removal is silently ignored.
	l.Remove(0)
	assert.Equal(t, 1, l.Len())
}

func TestItemListRemoveOutOfRange(t *testing.T) {
	l := NewItemList([]LineItem{
		{Description: "a", Quantity: 1, UnitPrice: 1},
		{Description: "b", Quantity: 1, UnitPrice: 1},
	})
	l.Remove(-1)
	l.Remove(5)
	assert.Equal(t, 2, l.Len())
}

func TestItemListRemovePreservesOrder(t *testing.T) {
	l := NewItemList([]LineItem{
		{Description: "a", Quantity: 1, UnitPrice: 1},
		{Description: "b", Quantity: 1, UnitPrice: 2},
		{Description: "c", Quantity: 1, UnitPrice: 3},
	})
	l.Remove(1)
	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Description)
	assert.Equal(t, "c", items[1].Description)
}

func TestItemListTotalsRecomputeOnRead(t *testing.T) {
	l := NewItemList(nil)
	l.SetDescription(0, "Fixture install")
	l.SetQuantity(0, 2)
	l.SetUnitPrice(0, 50)

	got := l.Totals(8)
	assert.InDelta(t, 100, got.Subtotal, tolerance)
	assert.InDelta(t, 8, got.TaxAmount, tolerance)
	assert.InDelta(t, 108, got.Total, tolerance)

	l.SetQuantity(0, 4)
	got = l.Totals(8)
	assert.InDelta(t, 200, got.Subtotal, tolerance)
}
