package notify

import (
	"sync"
	"time"

	"katalog/pkg/schedule"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 2000 * time.Millisecond

// Status is the visibility of a toast.
type Status string

const (
	Hidden  Status = "hidden"
	Visible Status = "visible"
)

// State is a snapshot of the toast.
type State struct {
	Status  Status    `json:"status"`
	Message string    `json:"message,omitempty"`
	Expiry  time.Time `json:"expiry"`
}

// Toast is a transient status message that hides itself after a fixed duration.
type Toast struct {
	duration time.Duration
	now      func() time.Time

	mu    sync.Mutex
	state State
	seq   uint64
	task  schedule.Task
}

// NewToast creates a hidden toast. A non-positive duration means DefaultDuration.
func NewToast(duration time.Duration) *Toast {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Toast{
		duration: duration,
		now:      time.Now,
		state:    State{Status: Hidden},
	}
}

// Show makes msg visible and restarts the auto-hide countdown.
func (t *Toast) Show(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	seq := t.seq
	t.state = State{Status: Visible, Message: msg, Expiry: t.now().Add(t.duration)}
	t.task.Schedule(t.duration, func() { t.expire(seq) })
}

// Hide dismisses the toast and cancels any pending auto-hide.
func (t *Toast) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	t.task.Cancel()
	t.state = State{Status: Hidden}
}

// State returns the current toast.
func (t *Toast) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Duration is the auto-hide delay.
func (t *Toast) Duration() time.Duration {
	return t.duration
}

// Stop cancels the pending auto-hide without changing what is shown.
func (t *Toast) Stop() {
	t.task.Cancel()
}

// expire hides the toast only if no newer Show or Hide happened since the
// countdown identified by seq started.
func (t *Toast) expire(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seq != seq {
		return
	}
	t.state = State{Status: Hidden}
}
