package ui

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into one trailing-edge invocation.
// Each Call resets the timer; fn runs only after delay has elapsed with no
// further calls. Safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given trailing delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the delay, cancelling any pending call.
// fn runs on a timer goroutine, so it must not touch model state directly.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops any pending call without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Throttler admits the first call immediately and suppresses further calls
// until the interval has passed (leading edge). Safe for concurrent use.
type Throttler struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewThrottler creates a throttler with the given suppression interval.
func NewThrottler(interval time.Duration) *Throttler {
	return &Throttler{interval: interval}
}

// Allow reports whether a call may proceed now, recording it if so.
func (t *Throttler) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset clears the suppression window so the next Allow succeeds.
func (t *Throttler) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = time.Time{}
}
