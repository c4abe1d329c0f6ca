package anim

import "time"

// Throttle lets at most one call through per limit. Calls inside the window
// are dropped but remembered, so the caller can schedule a trailing
// evaluation and not miss the final position.
type Throttle struct {
	limit   time.Duration
	last    time.Time
	pending bool
}

// NewThrottle creates a throttle with the given window.
func NewThrottle(limit time.Duration) *Throttle {
	return &Throttle{limit: limit}
}

// Allow reports whether a call at now may run.
func (t *Throttle) Allow(now time.Time) bool {
	if t.last.IsZero() || now.Sub(t.last) >= t.limit {
		t.last = now
		t.pending = false
		return true
	}
	t.pending = true
	return false
}

// Pending reports whether a call was dropped since the last allowed one.
func (t *Throttle) Pending() bool {
	return t.pending
}

// Limit returns the throttle window.
func (t *Throttle) Limit() time.Duration {
	return t.limit
}
