package cart

import (
	"testing"

	"github.com/rienbien8/pos-frontend/internal/modules/catalog"
)

func TestSubtotalSumsAppendedPrices(t *testing.T) {
	c := New()
	if c.Subtotal() != 0 {
		t.Fatalf("empty cart subtotal = %d, want 0", c.Subtotal())
	}

	c.Append(catalog.Product{Code: "001", Name: "Tea", UnitPrice: 150})
	c.Append(catalog.Product{Code: "002", Name: "Bread", UnitPrice: 300})
	// duplicate code is a separate row
	c.Append(catalog.Product{Code: "001", Name: "Tea", UnitPrice: 150})

	if got := c.Subtotal(); got != 600 {
		t.Fatalf("subtotal = %d, want 600", got)
	}
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	c := New()
	c.Append(catalog.Product{Code: "001", Name: "A", UnitPrice: 10})
	c.Append(catalog.Product{Code: "002", Name: "B", UnitPrice: 20})
	c.Append(catalog.Product{Code: "003", Name: "C", UnitPrice: 30})

	c.RemoveAt(1)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Code != "001" || items[1].Code != "003" {
		t.Fatalf("order not preserved: %+v", items)
	}
	if c.Subtotal() != 40 {
		t.Fatalf("subtotal = %d, want 40", c.Subtotal())
	}
}

func TestRemoveAtOutOfRangeIsNoop(t *testing.T) {
	c := New()
	c.Append(catalog.Product{Code: "001", Name: "A", UnitPrice: 10})

	c.RemoveAt(-1)
	c.RemoveAt(1)
	c.RemoveAt(99)

	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}

func TestItemsIsASnapshot(t *testing.T) {
	c := New()
	c.Append(catalog.Product{Code: "001", Name: "A", UnitPrice: 10})

	snap := c.Items()
	c.Append(catalog.Product{Code: "002", Name: "B", UnitPrice: 20})
	c.RemoveAt(0)

	if len(snap) != 1 || snap[0].Code != "001" {
		t.Fatalf("snapshot mutated: %+v", snap)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	c.Append(catalog.Product{Code: "001", Name: "A", UnitPrice: 10})
	c.Clear()
	if c.Len() != 0 || c.Subtotal() != 0 {
		t.Fatalf("cart not empty after clear: len=%d subtotal=%d", c.Len(), c.Subtotal())
	}
}
