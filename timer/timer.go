// Package timer measures wall-clock time spent in a block or function call
// and reports it as fixed-point seconds.
//
//	t := timer.New(func(s string) { log.Debugf("took %s S", s) })
//	defer t.Start().Stop()
package timer

import (
	"fmt"
	"sync"
	"time"
)

// Timer measures elapsed time between Start and Stop.
type Timer struct {
	mu      sync.Mutex
	cb      func(elapsed string)
	start   time.Time
	elapsed time.Duration
	running bool
	now     func() time.Time
}

// New creates a timer that is already started. cb may be nil.
func New(cb func(elapsed string)) *Timer {
	t := &Timer{cb: cb, now: time.Now}
	t.start = t.now()
	t.running = true
	return t
}

// Start records the current time as the start of a new measurement.
func (t *Timer) Start() *Timer {
	t.mu.Lock()
	t.start = t.now()
	t.elapsed = 0
	t.running = true
	t.mu.Unlock()
	return t
}

// Stop ends the measurement, invokes the callback and returns the formatted
// elapsed seconds. Stopping a stopped timer returns the last measurement
// without invoking the callback again.
func (t *Timer) Stop() string {
	t.mu.Lock()
	wasRunning := t.running
	if wasRunning {
		t.elapsed = t.now().Sub(t.start)
		t.running = false
	}
	s := Format(t.elapsed)
	cb := t.cb
	t.mu.Unlock()

	if wasRunning && cb != nil {
		cb(s)
	}
	return s
}

// Elapsed returns the measured duration, or the running duration while the
// timer has not been stopped.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return t.now().Sub(t.start)
	}
	return t.elapsed
}

// String renders Elapsed as fixed-point seconds.
func (t *Timer) String() string {
	return Format(t.Elapsed())
}

// Do times fn. The callback runs even if fn panics.
func (t *Timer) Do(fn func()) {
	defer t.Start().Stop()
	fn()
}

// Run times fn and returns its error.
func (t *Timer) Run(fn func() error) error {
	defer t.Start().Stop()
	return fn()
}

// Wrap returns a function that restarts the timer on every call.
func (t *Timer) Wrap(fn func()) func() {
	return func() { t.Do(fn) }
}

// WrapErr is Wrap for functions returning an error.
func (t *Timer) WrapErr(fn func() error) func() error {
	return func() error { return t.Run(fn) }
}

// Format renders d as seconds with two decimals.
func Format(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}
