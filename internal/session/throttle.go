package session

import "time"

// Limiter bounds how often a given input channel may trigger a full view
// recomputation, so fast typing or dragging cannot starve the control
// thread. An edit arriving inside the interval is parked, not dropped:
// the final edit of a burst always applies on the next Flush.
type Limiter struct {
	interval time.Duration
	now      func() time.Time
	last     map[Source]time.Time
	pending  map[Source]func()
}

// NewLimiter returns a limiter with the given minimum spacing between
// applied edits per source. A nil clock means time.Now.
func NewLimiter(interval time.Duration, now func() time.Time) *Limiter {
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		interval: interval,
		now:      now,
		last:     make(map[Source]time.Time),
		pending:  make(map[Source]func()),
	}
}

// Admit applies the edit immediately when the source's interval has
// elapsed and reports true. Otherwise the edit is parked, replacing any
// earlier parked edit for the same source, and Admit reports false.
func (l *Limiter) Admit(src Source, edit func()) bool {
	t := l.now()
	if last, ok := l.last[src]; ok && t.Sub(last) < l.interval {
		l.pending[src] = edit
		return false
	}
	l.last[src] = t
	delete(l.pending, src)
	edit()
	return true
}

// Flush applies every parked edit whose interval has elapsed and returns
// how many ran. Drive it from a periodic tick.
func (l *Limiter) Flush() int {
	t := l.now()
	n := 0
	for src, edit := range l.pending {
		if t.Sub(l.last[src]) < l.interval {
			continue
		}
		delete(l.pending, src)
		l.last[src] = t
		edit()
		n++
	}
	return n
}

// Pending reports whether any edit is parked, so the caller knows to keep
// ticking.
func (l *Limiter) Pending() bool { return len(l.pending) > 0 }
