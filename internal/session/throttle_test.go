package session

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source for limiter tests.
type fakeClock struct {
	at time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{at: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.at }
func (c *fakeClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func TestLimiterAdmitsFirstEdit(t *testing.T) {
	clock := newFakeClock()
	l := NewLimiter(100*time.Millisecond, clock.now)
	applied := 0
	if !l.Admit(SourceHexText, func() { applied++ }) {
		t.Fatal("first edit should apply immediately")
	}
	if applied != 1 {
		t.Fatalf("applied = %d, want 1", applied)
	}
}

func TestLimiterParksBurstAndKeepsFinalEdit(t *testing.T) {
	clock := newFakeClock()
	l := NewLimiter(100*time.Millisecond, clock.now)
	var got string
	l.Admit(SourceHexText, func() { got = "a" })

	// Rapid-fire burst inside the interval: each parked edit replaces the
	// previous one, nothing applies yet.
	for _, v := range []string{"b", "c", "d"} {
		v := v
		clock.advance(10 * time.Millisecond)
		if l.Admit(SourceHexText, func() { got = v }) {
			t.Fatalf("edit %q applied inside the interval", v)
		}
	}
	if got != "a" {
		t.Fatalf("got = %q, want still %q", got, "a")
	}
	if !l.Pending() {
		t.Fatal("burst should leave a parked edit")
	}

	// Too early: flush is a no-op.
	if n := l.Flush(); n != 0 {
		t.Fatalf("early flush applied %d edits", n)
	}

	// After the interval the final edit of the burst applies. "b" and "c"
	// are superseded, never applied, but "d" is never dropped.
	clock.advance(100 * time.Millisecond)
	if n := l.Flush(); n != 1 {
		t.Fatalf("flush applied %d edits, want 1", n)
	}
	if got != "d" {
		t.Fatalf("got = %q, want final edit %q", got, "d")
	}
	if l.Pending() {
		t.Fatal("nothing should remain parked")
	}
}

func TestLimiterTracksSourcesIndependently(t *testing.T) {
	clock := newFakeClock()
	l := NewLimiter(100*time.Millisecond, clock.now)
	l.Admit(SourceHexText, func() {})

	clock.advance(10 * time.Millisecond)
	applied := false
	// A different channel is not penalized by the hex channel's burst.
	if !l.Admit(SourceRGBText, func() { applied = true }) {
		t.Fatal("rgb edit should not be throttled by hex activity")
	}
	if !applied {
		t.Fatal("rgb edit did not run")
	}
}

func TestLimiterReopensAfterInterval(t *testing.T) {
	clock := newFakeClock()
	l := NewLimiter(100*time.Millisecond, clock.now)
	l.Admit(SourceField, func() {})
	clock.advance(150 * time.Millisecond)
	if !l.Admit(SourceField, func() {}) {
		t.Fatal("edit after the interval should apply immediately")
	}
}
