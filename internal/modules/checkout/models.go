package checkout

import "github.com/rienbien8/pos-frontend/internal/modules/cart"

// RegisterIdentity is the fixed identity this terminal stamps on every
// purchase. CashierCode may be blank; the purchase service substitutes its
// well-known default server-side.
type RegisterIdentity struct {
	StoreCode   string
	POSID       string
	CashierCode string
}

type PurchaseRequest struct {
	CashierCode string          `json:"cashier_code"`
	StoreCode   string          `json:"store_code"`
	POSID       string          `json:"pos_id"`
	Items       []cart.LineItem `json:"items"`
}

// PurchaseResponse is the success body of the purchase service.
// TotalAmount is a pointer so a missing field is distinguishable from zero.
type PurchaseResponse struct {
	Success       bool     `json:"success"`
	TotalAmount   *float64 `json:"total_amount"`
	TransactionID string   `json:"transaction_id"`
}

// Outcome is what the confirmation screen presents. Exactly one Outcome is
// produced per purchase call; there is no partial or streamed result.
type Outcome struct {
	// Total is tax-inclusive: the server's total_amount when available,
	// otherwise the locally computed subtotal.
	Total         int
	TransactionID string
	// Authoritative is true when Total came from the purchase service.
	Authoritative bool
}
