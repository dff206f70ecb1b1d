package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rienbien8/pos-frontend/internal/http/middleware"
	"github.com/rienbien8/pos-frontend/internal/http/validation"
	"github.com/rienbien8/pos-frontend/internal/modules/cart"
	"github.com/rienbien8/pos-frontend/internal/modules/catalog"
	"github.com/rienbien8/pos-frontend/internal/modules/checkout"
	"github.com/rienbien8/pos-frontend/internal/modules/journal"
	"github.com/rienbien8/pos-frontend/internal/session"
	"github.com/rienbien8/pos-frontend/internal/shared/apperr"
	"github.com/rienbien8/pos-frontend/pkg/view"
)

type ProductLooker interface {
	Lookup(ctx context.Context, code string) (catalog.Product, error)
}

type PurchaseRunner interface {
	Purchase(ctx context.Context, items []cart.LineItem) (checkout.Outcome, error)
}

// POSHandler binds the operator screen to the session state machine.
type POSHandler struct {
	Session  *session.Session
	Catalog  ProductLooker
	Checkout PurchaseRunner
	Journal  *journal.Repo // nil when journaling is disabled
	Logger   *slog.Logger
}

func NewPOSHandler(s *session.Session, looker ProductLooker, runner PurchaseRunner, jr *journal.Repo, l *slog.Logger) *POSHandler {
	if l == nil {
		l = slog.Default()
	}
	return &POSHandler{Session: s, Catalog: looker, Checkout: runner, Journal: jr, Logger: l}
}

func (h *POSHandler) screen(c *gin.Context) {
	c.JSON(http.StatusOK, view.SessionScreenFrom(h.Session.Snapshot()))
}

// State handles GET /api/session
func (h *POSHandler) State(c *gin.Context) {
	h.screen(c)
}

type lookupRequest struct {
	Code string `json:"code" binding:"required"`
}

// Lookup handles POST /api/lookup. A classified lookup failure is not an
// HTTP error: it lands in the result panel and the response is the normal
// screen snapshot.
func (h *POSHandler) Lookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid request body.", validation.FromBindError(err, &req)))
		return
	}

	gen, err := h.Session.BeginLookup(req.Code)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBlankCode):
			middleware.Fail(c, apperr.InvalidErr("Product code is blank.", nil))
		default:
			middleware.Fail(c, apperr.ConflictErr(err.Error()))
		}
		return
	}

	p, lerr := h.Catalog.Lookup(c.Request.Context(), req.Code)
	if lerr != nil {
		applied := h.Session.ResolveLookupFailure(gen, apperr.PublicMessage(lerr))
		if !applied {
			h.Logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "stale_lookup_discarded",
				slog.String("request_id", middleware.GetRequestID(c)),
			)
		}
		h.screen(c)
		return
	}

	if applied := h.Session.ResolveLookupSuccess(gen, p); !applied {
		h.Logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "stale_lookup_discarded",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("product_code", p.Code),
		)
	}
	h.screen(c)
}

// Append handles POST /api/cart/items - moves the pending product into the cart.
func (h *POSHandler) Append(c *gin.Context) {
	if err := h.Session.AppendPending(); err != nil {
		middleware.Fail(c, apperr.ConflictErr(err.Error()))
		return
	}
	h.screen(c)
}

// Remove handles DELETE /api/cart/items/:index. An out-of-range index is a
// no-op and still answers with the screen.
func (h *POSHandler) Remove(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Index must be numeric.", nil))
		return
	}
	if err := h.Session.RemoveItem(idx); err != nil {
		middleware.Fail(c, apperr.ConflictErr(err.Error()))
		return
	}
	h.screen(c)
}

// Purchase handles POST /api/purchase. Whatever the backend does, a latched
// non-empty cart resolves into exactly one confirmation.
func (h *POSHandler) Purchase(c *gin.Context) {
	items, gen, err := h.Session.BeginPurchase()
	if err != nil {
		middleware.Fail(c, apperr.ConflictErr(err.Error()))
		return
	}

	out, err := h.Checkout.Purchase(c.Request.Context(), items)
	if err != nil {
		// only reachable with an empty snapshot, which BeginPurchase rules out
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if applied := h.Session.ResolvePurchase(gen, out.Total, out.TransactionID, out.Authoritative); !applied {
		h.Logger.LogAttrs(c.Request.Context(), slog.LevelWarn, "stale_purchase_discarded",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("transaction_id", out.TransactionID),
		)
	}
	h.screen(c)
}

// Confirm handles POST /api/confirm - dismisses the confirmation and resets
// the whole session.
func (h *POSHandler) Confirm(c *gin.Context) {
	if err := h.Session.Dismiss(); err != nil {
		middleware.Fail(c, apperr.ConflictErr(err.Error()))
		return
	}
	h.screen(c)
}

// Reset handles POST /api/reset - manual clear outside the normal checkout
// cycle. Anything still in flight resolves into a discard afterwards.
func (h *POSHandler) Reset(c *gin.Context) {
	h.Session.Reset()
	h.screen(c)
}

// JournalRecent handles GET /api/journal - newest sales first.
func (h *POSHandler) JournalRecent(c *gin.Context) {
	if h.Journal == nil {
		c.JSON(http.StatusOK, gin.H{"transactions": []journal.Transaction{}})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	txs, err := h.Journal.Recent(c.Request.Context(), limit)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}
