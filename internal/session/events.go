package session

import "github.com/rienbien8/pos-frontend/internal/modules/catalog"

// The session evolves only through this closed set of events, applied one
// at a time under the session lock. Events carrying a generation are the
// resolutions of async work; apply discards them when the generation no
// longer matches (the session was reset while the request was in flight).
type event interface{ isEvent() }

type lookupStarted struct {
	code string
}

type lookupSucceeded struct {
	gen     uint64
	product catalog.Product
}

type lookupFailed struct {
	gen     uint64
	message string
}

type itemAppended struct{}

type itemRemoved struct {
	index int
}

type purchaseStarted struct{}

type purchaseResolved struct {
	gen           uint64
	total         int
	transactionID string
	authoritative bool
}

type sessionReset struct{}

func (lookupStarted) isEvent()    {}
func (lookupSucceeded) isEvent()  {}
func (lookupFailed) isEvent()     {}
func (itemAppended) isEvent()     {}
func (itemRemoved) isEvent()      {}
func (purchaseStarted) isEvent()  {}
func (purchaseResolved) isEvent() {}
func (sessionReset) isEvent()     {}
