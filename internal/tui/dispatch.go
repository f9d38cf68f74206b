package tui

// ---------------------------------------------------------------------------
// Overlay dispatch table: single source of truth for modal priority
// ---------------------------------------------------------------------------
//
// Two consumers read this table:
//   - Update (app.go)      — routes a tea.KeyMsg to the active modal
//   - renderOverlay (view.go) — renders the active modal's prompt
//
// Adding a new modal: add one entry in the correct priority position and
// both consumers stay in sync.

import (
	tea "github.com/charmbracelet/bubbletea"
)

// overlayEntry defines one level in the modal precedence chain. Guard
// reports whether this modal is active; the first matching guard wins.
type overlayEntry struct {
	name   string
	guard  func(m *Model) bool
	prompt string
	submit func(m *Model)
}

func overlayPrecedence() []overlayEntry {
	return []overlayEntry{
		{
			name:   "save",
			guard:  func(m *Model) bool { return m.overlay == overlaySaveName },
			prompt: "Palette name",
			submit: func(m *Model) { m.submitSaveName() },
		},
		{
			name:   "import",
			guard:  func(m *Model) bool { return m.overlay == overlayImportPath },
			prompt: "Import from",
			submit: func(m *Model) { m.submitImport() },
		},
		{
			name:   "export",
			guard:  func(m *Model) bool { return m.overlay == overlayExportPath },
			prompt: "Export to",
			submit: func(m *Model) { m.submitExport() },
		},
		{
			name:   "filter",
			guard:  func(m *Model) bool { return m.overlay == overlayPaletteFilter },
			prompt: "Filter palettes",
			submit: func(m *Model) { m.submitPaletteFilter() },
		},
	}
}

// activeOverlay returns the highest-priority active entry, if any.
func (m *Model) activeOverlay() (overlayEntry, bool) {
	for _, e := range overlayPrecedence() {
		if e.guard(m) {
			return e, true
		}
	}
	return overlayEntry{}, false
}

// dispatchOverlayKey routes a key to the active modal. The third return
// reports whether a modal consumed the key.
func (m *Model) dispatchOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	entry, ok := m.activeOverlay()
	if !ok {
		return m, nil, false
	}
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		return m, nil, true
	case "enter":
		entry.submit(m)
		return m, nil, true
	default:
		m.modal.handleKey(msg.String())
		return m, nil, true
	}
}
