// Package confirm gates destructive deletes behind an explicit confirmation.
package confirm

import (
	"sync"

	"katalog/internal/models"
)

// State of a delete confirmation.
type State string

const (
	Idle           State = "idle"
	PendingConfirm State = "pending_confirm"
)

// Flow is the Idle <-> PendingConfirm(product) state machine. It decides
// nothing about storage: Confirm hands the product back for the caller to remove.
type Flow struct {
	mu      sync.Mutex
	pending *models.Product
}

// Request moves to PendingConfirm(p). A request while already pending
// replaces the pending product.
func (f *Flow) Request(p models.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p = p.Clone()
	f.pending = &p
}

// Confirm returns to Idle and yields the product to remove.
// From Idle it does nothing and reports false.
func (f *Flow) Confirm() (models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending == nil {
		return models.Product{}, false
	}
	p := *f.pending
	f.pending = nil
	return p, true
}

// Cancel returns to Idle without removing anything.
// It reports whether a delete was pending.
func (f *Flow) Cancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	wasPending := f.pending != nil
	f.pending = nil
	return wasPending
}

// State reports Idle or PendingConfirm.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending == nil {
		return Idle
	}
	return PendingConfirm
}

// Pending returns the product awaiting confirmation.
func (f *Flow) Pending() (models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending == nil {
		return models.Product{}, false
	}
	return f.pending.Clone(), true
}
