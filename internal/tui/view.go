package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CodePen-Alt/ColorPicker/internal/colormodel"
	"github.com/CodePen-Alt/ColorPicker/internal/session"
)

// ---------------------------------------------------------------------------
// Layout: fixed rows so mouse hit-testing and rendering agree
// ---------------------------------------------------------------------------

const leftMargin = 2

// layout holds the screen coordinates of every mouse-interactive region.
// Rendering and hit-testing both derive from it so they cannot drift.
type layout struct {
	fieldLeft int
	fieldTop  int
	fieldW    int

	barLeft  int
	barW     int
	hueRow   int
	alphaRow int
}

func (m *Model) layout() layout {
	w := m.cfg.UI.FieldWidth
	return layout{
		fieldLeft: leftMargin,
		fieldTop:  2,
		fieldW:    w,
		barLeft:   leftMargin + 8,
		barW:      w - 8,
		hueRow:    2 + fieldHeight + 1,
		alphaRow:  2 + fieldHeight + 2,
	}
}

func (l layout) inField(x, y int) bool {
	return x >= l.fieldLeft && x < l.fieldLeft+l.fieldW &&
		y >= l.fieldTop && y < l.fieldTop+fieldHeight
}

func (l layout) inBar(x int) bool {
	return x >= l.barLeft && x < l.barLeft+l.barW
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m *Model) View() string {
	lay := m.layout()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderField(lay))
	b.WriteString("\n")
	b.WriteString(m.renderHueBar(lay))
	b.WriteString("\n")
	b.WriteString(m.renderAlphaBar(lay))
	b.WriteString("\n\n")
	b.WriteString(m.renderTextRows())
	b.WriteString("\n")
	b.WriteString(m.renderHarmony())
	b.WriteString("\n")
	b.WriteString(m.renderContrast())
	b.WriteString("\n\n")
	b.WriteString(m.renderPalettes())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	if entry, ok := m.activeOverlay(); ok {
		b.WriteString("\n")
		b.WriteString(m.renderOverlay(entry))
	}
	return b.String()
}

func (m *Model) renderHeader() string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(m.view.Hex)).
		Render(strings.Repeat(" ", 6))
	name := m.view.Name
	title := m.theme.Title.Render("colorpicker")
	line := fmt.Sprintf("%s  %s %s  %s", title, swatch, m.view.Hex, m.theme.Status.Render(name))
	return strings.Repeat(" ", leftMargin) + line
}

// renderField draws the saturation/lightness plane at the current hue.
// Saturation grows left to right, lightness falls top to bottom, and the
// cursor cell shows a crosshair.
func (m *Model) renderField(lay layout) string {
	curCol := int(m.fieldX*float64(lay.fieldW-1) + 0.5)
	curRow := int(m.fieldY*float64(fieldHeight-1) + 0.5)

	wrap := m.paneWrap(focusField)
	var b strings.Builder
	for r := 0; r < fieldHeight; r++ {
		b.WriteString(strings.Repeat(" ", leftMargin))
		for c := 0; c < lay.fieldW; c++ {
			s := float64(c) / float64(lay.fieldW-1)
			l := 1 - float64(r)/float64(fieldHeight-1)
			cell := colormodel.ToRGB(m.view.Hue, s*100, l*100)
			st := lipgloss.NewStyle().Background(lipgloss.Color(colormodel.Hex(cell)))
			if r == curRow && c == curCol {
				st = st.Foreground(lipgloss.Color(cursorInk(cell)))
				b.WriteString(st.Render("+"))
				continue
			}
			b.WriteString(st.Render(" "))
		}
		if r == 0 {
			b.WriteString("  " + wrap.Render("saturation / lightness"))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderHueBar(lay layout) string {
	wrap := m.paneWrap(focusHue)
	marker := int(m.view.Hue / 360 * float64(lay.barW-1))
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftMargin))
	b.WriteString(wrap.Render(padRight("hue", 8)))
	for i := 0; i < lay.barW; i++ {
		deg := 360 * float64(i) / float64(lay.barW-1)
		cell := colormodel.ToRGB(deg, 100, 50)
		st := lipgloss.NewStyle().Background(lipgloss.Color(colormodel.Hex(cell)))
		if i == marker {
			b.WriteString(st.Foreground(lipgloss.Color(cursorInk(cell))).Render("|"))
			continue
		}
		b.WriteString(st.Render(" "))
	}
	b.WriteString(fmt.Sprintf("  %3.0f°", m.view.Hue))
	return b.String()
}

// renderAlphaBar shows opacity as the current color fading over a
// checker pattern.
func (m *Model) renderAlphaBar(lay layout) string {
	wrap := m.paneWrap(focusAlpha)
	marker := int(m.view.Alpha * float64(lay.barW-1))
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftMargin))
	b.WriteString(wrap.Render(padRight("alpha", 8)))
	for i := 0; i < lay.barW; i++ {
		a := float64(i) / float64(lay.barW-1)
		cell := blendOnChecker(m.view.RGB, a, i)
		st := lipgloss.NewStyle().Background(lipgloss.Color(colormodel.Hex(cell)))
		if i == marker {
			b.WriteString(st.Foreground(lipgloss.Color(cursorInk(cell))).Render("|"))
			continue
		}
		b.WriteString(st.Render(" "))
	}
	b.WriteString(fmt.Sprintf("  %3.0f%%", m.view.Alpha*100))
	return b.String()
}

func (m *Model) renderTextRows() string {
	rows := []struct {
		label string
		focus focusArea
		field *textField
	}{
		{"hex", focusHex, &m.hexField},
		{"rgb", focusRGB, &m.rgbField},
		{"hsl", focusHSL, &m.hslField},
	}
	var b strings.Builder
	for _, row := range rows {
		focused := m.focus == row.focus
		wrap := m.paneWrap(row.focus)
		b.WriteString(strings.Repeat(" ", leftMargin))
		b.WriteString(wrap.Render(padRight(row.label, 8)))
		b.WriteString(row.field.render(focused))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderHarmony() string {
	wrap := m.paneWrap(focusHarmony)
	set := m.sess.HarmonySet(m.harmonyKind)
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftMargin))
	b.WriteString(wrap.Render(m.harmonyKind.String()))
	b.WriteString("  ")
	for i, h := range set {
		hex := colormodel.Hex(colormodel.ToRGB(float64(h.H), float64(h.S), float64(h.L)))
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
		label := m.theme.Status.Render(hex)
		if m.focus == focusHarmony && i == m.harmonyCursor {
			label = m.theme.FocusWrap.Render(hex)
		}
		b.WriteString(swatch + " " + label + "  ")
	}
	return strings.TrimRight(b.String(), " ")
}

func (m *Model) renderContrast() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftMargin))
	b.WriteString(m.theme.Label.Render("contrast"))
	b.WriteString("  ")
	b.WriteString(m.contrastBadge("on white", m.view.ContrastWhite))
	b.WriteString("  ")
	b.WriteString(m.contrastBadge("on black", m.view.ContrastBlack))
	return b.String()
}

func (m *Model) contrastBadge(label string, c session.Contrast) string {
	text := fmt.Sprintf("%s %.2f:1 %s", label, c.Ratio, c.Grade)
	if c.Grade == colormodel.GradeFail {
		return m.theme.BadgeFail.Render(text)
	}
	return m.theme.BadgePass.Render(text)
}

func (m *Model) renderPalettes() string {
	wrap := m.paneWrap(focusPalettes)
	palettes := m.visiblePalettes()
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", leftMargin))
	b.WriteString(wrap.Render(fmt.Sprintf("palettes (%d)", len(palettes))))
	if m.paletteFilter != "" {
		b.WriteString("  " + m.theme.Status.Render("filter: "+m.paletteFilter))
	}
	b.WriteString("\n")
	if len(palettes) == 0 {
		empty := "none saved; ctrl+s saves the current set"
		if m.paletteFilter != "" {
			empty = "no palettes match the filter"
		}
		b.WriteString(strings.Repeat(" ", leftMargin))
		b.WriteString(m.theme.Status.Render(empty))
		return b.String()
	}
	for i, p := range palettes {
		b.WriteString(strings.Repeat(" ", leftMargin))
		cursor := "  "
		if m.focus == focusPalettes && i == m.paletteCursor {
			cursor = m.theme.FocusWrap.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(padRight(p.Name, 18))
		b.WriteString(" ")
		for j, hex := range p.Colors {
			cell := "  "
			if m.focus == focusPalettes && i == m.paletteCursor && j == m.swatchCursor {
				cell = "[]"
			}
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(cell))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return strings.Repeat(" ", leftMargin) + m.theme.StatusBar.Render(m.status)
}

func (m *Model) renderFooter() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return m.theme.Footer.Render(strings.Join(parts, "  ·  "))
}

func (m *Model) renderOverlay(entry overlayEntry) string {
	body := fmt.Sprintf("%s: %s", entry.prompt, m.modal.render(true))
	hint := m.theme.Status.Render("enter to confirm · esc to cancel")
	return strings.Repeat(" ", leftMargin) + m.theme.Modal.Render(body+"\n"+hint)
}

// paneWrap styles a pane label by whether it holds focus.
func (m *Model) paneWrap(area focusArea) lipgloss.Style {
	if m.focus == area {
		return m.theme.FocusWrap
	}
	return m.theme.BlurWrap
}

// cursorInk picks a marker color legible against the given cell.
func cursorInk(c colormodel.RGB) string {
	if colormodel.ContrastRatio(c, colormodel.RGB{R: 255, G: 255, B: 255}) >= 3 {
		return "#ffffff"
	}
	return "#000000"
}

// blendOnChecker composites the color at opacity a over a two-tone
// checker cell, the usual transparency preview.
func blendOnChecker(c colormodel.RGB, a float64, i int) colormodel.RGB {
	base := uint8(0x55)
	if i%2 == 0 {
		base = 0x88
	}
	mix := func(fg uint8) uint8 {
		return uint8(float64(fg)*a + float64(base)*(1-a) + 0.5)
	}
	return colormodel.RGB{R: mix(c.R), G: mix(c.G), B: mix(c.B)}
}
