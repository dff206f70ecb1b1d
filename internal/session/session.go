package session

import (
	"strings"
	"sync"

	"github.com/rienbien8/pos-frontend/internal/modules/cart"
	"github.com/rienbien8/pos-frontend/internal/modules/catalog"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLookingUp  Phase = "looking_up"
	PhaseSubmitting Phase = "submitting"
	PhasePresenting Phase = "presenting"
)

// Session is the single operator session: entered code, pending lookup
// result, cart and checkout phase. All mutation goes through the event
// dispatcher; public methods validate the transition, apply the event and
// hand back what the caller needs to continue.
//
// The generation counter guards against stale async results: it is captured
// when a lookup or purchase starts and checked when the result arrives. A
// reset bumps it, so anything still in flight resolves into a discard.
type Session struct {
	mu  sync.Mutex
	gen uint64

	code     string
	pending  *catalog.Product
	errorMsg string
	cart     *cart.Cart

	phase         Phase
	total         int
	transactionID string
	authoritative bool
}

func New() *Session {
	return &Session{cart: cart.New(), phase: PhaseIdle}
}

// State is an immutable snapshot for rendering.
type State struct {
	Code          string
	Pending       *catalog.Product
	ErrorMsg      string
	Items         []cart.LineItem
	Subtotal      int
	Phase         Phase
	Total         int
	TransactionID string
	Authoritative bool
	Generation    uint64
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	var pending *catalog.Product
	if s.pending != nil {
		p := *s.pending
		pending = &p
	}
	return State{
		Code:          s.code,
		Pending:       pending,
		ErrorMsg:      s.errorMsg,
		Items:         s.cart.Items(),
		Subtotal:      s.cart.Subtotal(),
		Phase:         s.phase,
		Total:         s.total,
		TransactionID: s.transactionID,
		Authoritative: s.authoritative,
		Generation:    s.gen,
	}
}

// BeginLookup latches the session for one lookup and returns the generation
// the caller must present when resolving. Blank codes never start a lookup.
func (s *Session) BeginLookup(code string) (uint64, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, catalog.ErrBlankCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case PhaseLookingUp:
		return 0, ErrLookupInFlight
	case PhaseSubmitting:
		return 0, ErrSubmitting
	case PhasePresenting:
		return 0, ErrPresenting
	}
	s.apply(lookupStarted{code: code})
	return s.gen, nil
}

// ResolveLookupSuccess applies a resolved product. Returns false when the
// result is stale (session reset since BeginLookup) and was discarded.
func (s *Session) ResolveLookupSuccess(gen uint64, p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.phase != PhaseLookingUp {
		return false
	}
	s.apply(lookupSucceeded{gen: gen, product: p})
	return true
}

// ResolveLookupFailure surfaces a classified lookup error message.
func (s *Session) ResolveLookupFailure(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.phase != PhaseLookingUp {
		return false
	}
	s.apply(lookupFailed{gen: gen, message: message})
	return true
}

// AppendPending moves the pending product into the cart and clears the
// code/pending/error trio. The cart itself is preserved.
func (s *Session) AppendPending() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case PhaseLookingUp:
		return ErrLookupInFlight
	case PhaseSubmitting:
		return ErrSubmitting
	case PhasePresenting:
		return ErrPresenting
	}
	if s.pending == nil {
		return ErrNoPendingProduct
	}
	s.apply(itemAppended{})
	return nil
}

// RemoveItem drops the cart row at index; out-of-range is a no-op.
func (s *Session) RemoveItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case PhaseSubmitting:
		return ErrSubmitting
	case PhasePresenting:
		return ErrPresenting
	}
	s.apply(itemRemoved{index: index})
	return nil
}

// BeginPurchase latches the purchase trigger and returns the cart snapshot
// to submit. The latch closes the double-submission hole: a second trigger
// while one is in flight is rejected, not queued.
func (s *Session) BeginPurchase() ([]cart.LineItem, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case PhaseLookingUp:
		return nil, 0, ErrLookupInFlight
	case PhaseSubmitting:
		return nil, 0, ErrSubmitting
	case PhasePresenting:
		return nil, 0, ErrPresenting
	}
	if s.cart.Len() == 0 {
		return nil, 0, ErrCartEmpty
	}
	s.apply(purchaseStarted{})
	return s.cart.Items(), s.gen, nil
}

// ResolvePurchase presents the outcome total. Stale outcomes are discarded.
func (s *Session) ResolvePurchase(gen uint64, total int, transactionID string, authoritative bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.phase != PhaseSubmitting {
		return false
	}
	s.apply(purchaseResolved{gen: gen, total: total, transactionID: transactionID, authoritative: authoritative})
	return true
}

// Dismiss acknowledges the confirmation and performs the full reset.
func (s *Session) Dismiss() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhasePresenting {
		return ErrNotPresenting
	}
	s.apply(sessionReset{})
	return nil
}

// Reset clears everything unconditionally. Bumping the generation makes any
// in-flight lookup or purchase resolve into a discard.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(sessionReset{})
}

// apply is the single transition function. Callers hold the lock and have
// already validated phase preconditions.
func (s *Session) apply(ev event) {
	switch ev := ev.(type) {
	case lookupStarted:
		s.code = ev.code
		s.pending = nil
		s.errorMsg = ""
		s.phase = PhaseLookingUp

	case lookupSucceeded:
		p := ev.product
		s.pending = &p
		s.errorMsg = ""
		s.phase = PhaseIdle

	case lookupFailed:
		s.pending = nil
		s.errorMsg = ev.message
		s.phase = PhaseIdle

	case itemAppended:
		s.cart.Append(*s.pending)
		s.code = ""
		s.pending = nil
		s.errorMsg = ""

	case itemRemoved:
		s.cart.RemoveAt(ev.index)

	case purchaseStarted:
		s.phase = PhaseSubmitting

	case purchaseResolved:
		s.total = ev.total
		s.transactionID = ev.transactionID
		s.authoritative = ev.authoritative
		s.phase = PhasePresenting

	case sessionReset:
		s.gen++
		s.code = ""
		s.pending = nil
		s.errorMsg = ""
		s.cart.Clear()
		s.total = 0
		s.transactionID = ""
		s.authoritative = false
		s.phase = PhaseIdle
	}
}
