package catalog

// Product is a catalog record as served by the product master.
// UnitPrice is tax-inclusive; the client never recomputes tax.
type Product struct {
	Code      string `json:"product_code"`
	Name      string `json:"product_name"`
	UnitPrice int    `json:"price"`
}
