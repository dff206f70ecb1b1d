package cart

import "github.com/rienbien8/pos-frontend/internal/modules/catalog"

// LineItem is one cart row: a positional copy of a product taken at append
// time. Two rows may share a product code and are still independent items.
type LineItem struct {
	Code      string `json:"product_code"`
	Name      string `json:"product_name"`
	UnitPrice int    `json:"price"`
}

// Cart is an ordered, mutable purchase list. Display order is insertion
// order. Not safe for concurrent use; the owning session serializes access.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Append copies the product to the end of the list as a new line item.
func (c *Cart) Append(p catalog.Product) {
	c.items = append(c.items, LineItem{
		Code:      p.Code,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
	})
}

// RemoveAt drops the item at index, keeping the relative order of the rest.
// Out-of-range indexes are a silent no-op.
func (c *Cart) RemoveAt(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Subtotal is the sum of tax-inclusive unit prices, recomputed per call.
func (c *Cart) Subtotal() int {
	total := 0
	for _, it := range c.items {
		total += it.UnitPrice
	}
	return total
}

func (c *Cart) Len() int { return len(c.items) }

// Items returns a snapshot copy; mutating the cart afterwards does not
// affect a snapshot already handed out.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Clear empties the list. Only the post-checkout reset uses this.
func (c *Cart) Clear() {
	c.items = nil
}
