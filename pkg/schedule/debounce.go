package schedule

import (
	"sync"
	"time"
)

// Debouncer emits the last pushed value once no new value has arrived for
// the configured interval.
type Debouncer[T any] struct {
	delay time.Duration
	emit  func(T)

	task    Task
	mu      sync.Mutex
	value   T
	pending bool
}

// NewDebouncer returns a Debouncer that calls emit with settled values.
func NewDebouncer[T any](delay time.Duration, emit func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, emit: emit}
}

// Push records v and restarts the quiescence interval.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.value = v
	d.pending = true
	d.task.Schedule(d.delay, func() { d.fire() })
}

// Flush emits the pending value immediately. It reports whether there was one.
func (d *Debouncer[T]) Flush() bool {
	d.task.Cancel()
	return d.fire()
}

// Stop drops the pending value without emitting it.
func (d *Debouncer[T]) Stop() {
	d.task.Cancel()

	d.mu.Lock()
	var zero T
	d.value = zero
	d.pending = false
	d.mu.Unlock()
}

func (d *Debouncer[T]) fire() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.value
	d.pending = false
	d.mu.Unlock()

	d.emit(v)
	return true
}
