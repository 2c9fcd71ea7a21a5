// Package host provides the timers a chart host needs around the engine.
//
// The engine itself is synchronous. A host coalesces bursts of resize or
// hover events with a Debouncer and calls the engine from its own loop once
// the burst settles.
package host

import (
	"sync"
	"time"
)

// Delays used for container resizes and tooltip hover intent.
const (
	ResizeDelay = 500 * time.Millisecond
	HoverDelay  = 150 * time.Millisecond
)

// Debouncer calls a function once a delay has passed without a new
// Trigger. It is safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

// NewDebouncer returns a stopped debouncer calling fn after delay.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// NewSignal returns a debouncer which sends on the returned channel when it
// fires. Signals not yet received are merged into one.
func NewSignal(delay time.Duration) (*Debouncer, <-chan struct{}) {
	ch := make(chan struct{}, 1)
	d := NewDebouncer(delay, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	return d, ch
}

// Trigger (re)starts the delay.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels a pending call. It reports whether a call was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
