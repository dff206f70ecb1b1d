package view

import "github.com/rienbien8/pos-frontend/internal/session"

// IdlePrompt is shown when the result panel has neither an error nor a
// resolved product.
const IdlePrompt = "Enter a product code and press Scan."

type ProductView struct {
	Code       string `json:"product_code"`
	Name       string `json:"product_name"`
	UnitPrice  int    `json:"price"`
	PriceLabel string `json:"price_label"`
}

// ResultPanel carries at most one of error, product or the idle prompt.
type ResultPanel struct {
	Error   string       `json:"error,omitempty"`
	Product *ProductView `json:"product,omitempty"`
	Prompt  string       `json:"prompt,omitempty"`
}

type CartRow struct {
	Index      int    `json:"index"`
	Code       string `json:"product_code"`
	Name       string `json:"product_name"`
	UnitPrice  int    `json:"price"`
	PriceLabel string `json:"price_label"`
}

type Confirmation struct {
	Total         int    `json:"total_amount"`
	TotalLabel    string `json:"total_label"`
	TransactionID string `json:"transaction_id,omitempty"`
	Authoritative bool   `json:"authoritative"`
}

// SessionScreen is the full single-screen snapshot the client renders.
type SessionScreen struct {
	Code          string        `json:"code"`
	Loading       bool          `json:"loading"`
	Panel         ResultPanel   `json:"panel"`
	Cart          []CartRow     `json:"cart"`
	Subtotal      int           `json:"subtotal"`
	SubtotalLabel string        `json:"subtotal_label"`
	CanPurchase   bool          `json:"can_purchase"`
	Confirmation  *Confirmation `json:"confirmation,omitempty"`
}

func SessionScreenFrom(st session.State) SessionScreen {
	screen := SessionScreen{
		Code:          st.Code,
		Loading:       st.Phase == session.PhaseLookingUp,
		Cart:          make([]CartRow, 0, len(st.Items)),
		Subtotal:      st.Subtotal,
		SubtotalLabel: Yen(st.Subtotal),
		CanPurchase:   len(st.Items) > 0 && st.Phase == session.PhaseIdle,
	}

	switch {
	case st.ErrorMsg != "":
		screen.Panel = ResultPanel{Error: st.ErrorMsg}
	case st.Pending != nil:
		screen.Panel = ResultPanel{Product: &ProductView{
			Code:       st.Pending.Code,
			Name:       st.Pending.Name,
			UnitPrice:  st.Pending.UnitPrice,
			PriceLabel: Yen(st.Pending.UnitPrice),
		}}
	default:
		screen.Panel = ResultPanel{Prompt: IdlePrompt}
	}

	for i, it := range st.Items {
		screen.Cart = append(screen.Cart, CartRow{
			Index:      i,
			Code:       it.Code,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			PriceLabel: Yen(it.UnitPrice),
		})
	}

	if st.Phase == session.PhasePresenting {
		screen.Confirmation = &Confirmation{
			Total:         st.Total,
			TotalLabel:    Yen(st.Total),
			TransactionID: st.TransactionID,
			Authoritative: st.Authoritative,
		}
	}
	return screen
}
