package session

// Drag tracks one pointer drag over a control. A drag opens on Begin,
// stays open through any number of moves, and closes on End. CloseAny is
// the safety net: the terminal "end" event can be missed (pointer left
// the window), so any unrelated top-level release must also close an open
// drag rather than leave the session stuck dragging.
type Drag struct {
	src    Source
	active bool
}

// Begin opens a drag for the given source, replacing any stale one.
func (d *Drag) Begin(src Source) {
	d.src = src
	d.active = true
}

// Active reports whether a drag is open, and for which source.
func (d *Drag) Active() (Source, bool) {
	if !d.active {
		return SourceNone, false
	}
	return d.src, true
}

// End unconditionally closes the drag.
func (d *Drag) End() {
	d.active = false
	d.src = SourceNone
}

// CloseAny closes an open drag regardless of source and reports whether
// one was open. Call it on every top-level pointer release.
func (d *Drag) CloseAny() bool {
	was := d.active
	d.End()
	return was
}
