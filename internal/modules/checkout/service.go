package checkout

import (
	"context"
	"log/slog"

	"github.com/rienbien8/pos-frontend/internal/modules/cart"
	"github.com/rienbien8/pos-frontend/internal/modules/journal"
)

// Orchestrator drives the purchase flow end to end. A backend failure is
// deliberately downgraded to a confirmation with the locally computed
// subtotal: the physical sale has already happened at the register, so the
// operator always gets a total to read out. Do not turn this into a hard
// failure.
type Orchestrator struct {
	submitter Submitter
	identity  RegisterIdentity
	journal   *journal.Repo // nil disables journaling
	logger    *slog.Logger
}

func NewOrchestrator(sub Submitter, id RegisterIdentity, jr *journal.Repo, l *slog.Logger) *Orchestrator {
	if l == nil {
		l = slog.Default()
	}
	return &Orchestrator{submitter: sub, identity: id, journal: jr, logger: l}
}

// Purchase submits the cart snapshot and resolves exactly one Outcome.
// The only error it returns is ErrCartEmpty; every upstream failure resolves
// into a degraded Outcome instead.
func (o *Orchestrator) Purchase(ctx context.Context, items []cart.LineItem) (Outcome, error) {
	if len(items) == 0 {
		return Outcome{}, ErrCartEmpty
	}

	subtotal := 0
	for _, it := range items {
		subtotal += it.UnitPrice
	}

	req := PurchaseRequest{
		CashierCode: o.identity.CashierCode,
		StoreCode:   o.identity.StoreCode,
		POSID:       o.identity.POSID,
		Items:       items,
	}

	var out Outcome
	resp, err := o.submitter.Submit(ctx, req)
	switch {
	case err != nil:
		o.logger.LogAttrs(ctx, slog.LevelWarn, "purchase_degraded",
			slog.Int("subtotal", subtotal),
			slog.Int("items", len(items)),
			slog.Any("err", err),
		)
		out = Outcome{Total: subtotal, Authoritative: false}
	case resp.TotalAmount == nil:
		// 2xx but the response shape is degraded; fall back to the subtotal
		o.logger.LogAttrs(ctx, slog.LevelWarn, "purchase_total_missing",
			slog.Int("subtotal", subtotal),
			slog.String("transaction_id", resp.TransactionID),
		)
		out = Outcome{Total: subtotal, TransactionID: resp.TransactionID, Authoritative: false}
	default:
		out = Outcome{Total: int(*resp.TotalAmount), TransactionID: resp.TransactionID, Authoritative: true}
	}

	o.record(ctx, items, subtotal, out)
	return out, nil
}

// record writes the sale to the local journal. Best effort: a journal
// failure must never block the confirmation.
func (o *Orchestrator) record(ctx context.Context, items []cart.LineItem, subtotal int, out Outcome) {
	if o.journal == nil {
		return
	}
	_, err := o.journal.Record(ctx, journal.Entry{
		TransactionRef: out.TransactionID,
		TotalAmount:    out.Total,
		Subtotal:       subtotal,
		Authoritative:  out.Authoritative,
		StoreCode:      o.identity.StoreCode,
		POSID:          o.identity.POSID,
		CashierCode:    o.identity.CashierCode,
		Items:          items,
	})
	if err != nil {
		o.logger.LogAttrs(ctx, slog.LevelError, "journal_write_failed",
			slog.String("transaction_id", out.TransactionID),
			slog.Any("err", err),
		)
	}
}
