// Package debounce delays input until the user stops typing.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiet period used by the search fields.
const DefaultWindow = 300 * time.Millisecond

// Debouncer delivers only the latest pushed value, once, after window has
// elapsed without another push. emit runs on the timer goroutine and must not
// call Close.
type Debouncer[T any] struct {
	// emitting serializes emit against Close.
	emitting sync.Mutex
	mu       sync.Mutex
	window   time.Duration
	emit     func(T)
	timer    *time.Timer
	gen      uint64
	pending  T
	armed    bool
	closed   bool
}

func New[T any](window time.Duration, emit func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer[T]{window: window, emit: emit}
}

// Push records v and restarts the quiet window.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = v
	d.armed = true
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// Flush emits the pending value now, if any, on the caller's goroutine.
func (d *Debouncer[T]) Flush() {
	d.emitting.Lock()
	defer d.emitting.Unlock()
	d.mu.Lock()
	if !d.armed || d.closed {
		d.mu.Unlock()
		return
	}
	v := d.take()
	d.mu.Unlock()
	d.emit(v)
}

// Cancel drops the pending value.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
}

// Close cancels and makes every later Push a no-op. It waits for an emit
// already in progress, so nothing is delivered once Close returns.
func (d *Debouncer[T]) Close() {
	d.emitting.Lock()
	defer d.emitting.Unlock()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
	d.closed = true
}

func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.emitting.Lock()
	defer d.emitting.Unlock()
	d.mu.Lock()
	if gen != d.gen || !d.armed || d.closed {
		d.mu.Unlock()
		return
	}
	v := d.take()
	d.mu.Unlock()
	d.emit(v)
}

// take must be called with mu held.
func (d *Debouncer[T]) take() T {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	v := d.pending
	var zero T
	d.pending = zero
	d.armed = false
	return v
}
