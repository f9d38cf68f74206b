package tui

import "strings"

// textField bundles a string value with its cursor position, for
// cursor-aware editing of the hex/rgb/hsl rows and modal inputs.
type textField struct {
	Value  string
	Cursor int
}

// handleKey processes a single key event. Returns true if the key was
// consumed (printable input, backspace, or cursor movement).
func (f *textField) handleKey(keyName string) bool {
	switch keyName {
	case "backspace":
		if f.Cursor > 0 {
			f.Value = f.Value[:f.Cursor-1] + f.Value[f.Cursor:]
			f.Cursor--
		}
		return true
	case "left":
		if f.Cursor > 0 {
			f.Cursor--
		}
		return true
	case "right":
		if f.Cursor < len(f.Value) {
			f.Cursor++
		}
		return true
	case "home":
		f.Cursor = 0
		return true
	case "end":
		f.Cursor = len(f.Value)
		return true
	default:
		return f.insertPrintable(keyName)
	}
}

// insertPrintable inserts a single printable ASCII rune at the cursor.
// Multi-rune key names ("enter", "tab", ...) are not text.
func (f *textField) insertPrintable(keyName string) bool {
	if len(keyName) != 1 {
		return false
	}
	c := keyName[0]
	if c < 0x20 || c > 0x7e {
		return false
	}
	f.Value = f.Value[:f.Cursor] + keyName + f.Value[f.Cursor:]
	f.Cursor++
	return true
}

// render returns the text with a cursor marker at the current position.
func (f *textField) render(focused bool) string {
	if !focused {
		return f.Value
	}
	if f.Cursor >= len(f.Value) {
		return f.Value + "▏"
	}
	return f.Value[:f.Cursor] + "▏" + f.Value[f.Cursor:]
}

// set replaces the value and places the cursor at the end.
func (f *textField) set(value string) {
	f.Value = value
	f.Cursor = len(value)
}

// padRight pads s with spaces to exactly width cells, truncating if
// longer.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
