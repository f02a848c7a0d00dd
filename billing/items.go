package billing

// ItemList is the ordered, append-only collection of line items behind a
// document editing session. A list always keeps at least one row so the
// editor never renders an empty table.
type ItemList struct {
	items []LineItem
}

// NewItemList seeds the list from existing rows, falling back to a single
// blank row when the document has none.
func NewItemList(items []LineItem) *ItemList {
	l := &ItemList{items: append([]LineItem(nil), items...)}
	if len(l.items) == 0 {
		l.Add()
	}
	return l
}

// Add appends a blank row with quantity 1.
func (l *ItemList) Add() {
	l.items = append(l.items, LineItem{Quantity: 1})
}

// SetDescription replaces the description of the row at index i.
func (l *ItemList) SetDescription(i int, description string) {
	l.items[i].Description = description
}

// SetQuantity replaces the quantity of the row at index i.
func (l *ItemList) SetQuantity(i int, quantity float64) {
	l.items[i].Quantity = sanitize(quantity)
}

// SetUnitPrice replaces the unit price of the row at index i.
func (l *ItemList) SetUnitPrice(i int, unitPrice float64) {
	l.items[i].UnitPrice = sanitize(unitPrice)
}

// Remove deletes the row at index i. Removing the last remaining row, or
// passing an out-of-range index, is a no-op.
func (l *ItemList) Remove(i int) {
	if len(l.items) <= 1 || i < 0 || i >= len(l.items) {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// Len reports the number of rows.
func (l *ItemList) Len() int {
	return len(l.items)
}

// Items returns a copy of the rows in order.
func (l *ItemList) Items() []LineItem {
	return append([]LineItem(nil), l.items...)
}

// Totals recomputes the document aggregates from the current rows. No
// caching: every read reflects the latest mutation.
func (l *ItemList) Totals(taxRate float64) Totals {
	return ComputeTotals(l.items, taxRate)
}
