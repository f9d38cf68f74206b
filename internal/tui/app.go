// Package tui is the terminal frontend: it feeds raw pointer, keyboard,
// and file input into the session and repaints every surface from the
// session's ViewUpdates. All the color logic lives below it.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CodePen-Alt/ColorPicker/internal/colormodel"
	"github.com/CodePen-Alt/ColorPicker/internal/config"
	"github.com/CodePen-Alt/ColorPicker/internal/session"
)

// focusArea identifies the pane keyboard input is routed to.
type focusArea int

const (
	focusField focusArea = iota
	focusHue
	focusAlpha
	focusHex
	focusRGB
	focusHSL
	focusHarmony
	focusPalettes
	focusAreaCount
)

// overlayKind identifies the active modal, if any.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlaySaveName
	overlayImportPath
	overlayExportPath
	overlayPaletteFilter
)

const fieldHeight = 12

// PrefStore persists UI preferences (currently just the theme name).
type PrefStore interface {
	Set(ctx context.Context, key, value string) error
}

// PrefKeyTheme is the KV key the theme preference lives under.
const PrefKeyTheme = "theme"

type tickMsg time.Time

type sampleDoneMsg struct {
	res session.SampleResult
	err error
}

// Model is the bubbletea model. Construct with New.
type Model struct {
	ctx     context.Context
	cfg     config.Config
	sess    *session.Session
	limiter *session.Limiter
	drag    session.Drag
	sampler Sampler
	prefs   PrefStore
	keys    keyMap
	theme   Theme

	view session.ViewUpdate

	focus   focusArea
	overlay overlayKind
	modal   textField

	hexField textField
	rgbField textField
	hslField textField

	// normalized cursor position inside the saturation/lightness field
	fieldX, fieldY float64

	harmonyKind   colormodel.HarmonyKind
	harmonyCursor int

	paletteCursor int
	swatchCursor  int
	paletteFilter string

	status   string
	sampling bool
	ticking  bool
	width    int
	height   int
}

// New wires the model. The session must already have its palettes loaded.
func New(ctx context.Context, cfg config.Config, sess *session.Session, sampler Sampler, prefs PrefStore) *Model {
	m := &Model{
		ctx:     ctx,
		cfg:     cfg,
		sess:    sess,
		limiter: session.NewLimiter(time.Duration(cfg.UI.ThrottleMS)*time.Millisecond, nil),
		sampler: sampler,
		prefs:   prefs,
		keys:    newKeyMap(),
		theme:   ThemeByName(cfg.UI.Theme),
	}
	if sampler == nil {
		m.sampler = UnavailableSampler{}
	}
	if !m.sampler.Available() {
		m.status = "pixel sampling unavailable in this terminal"
	}
	m.adoptView(sess.View())
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.ticking = false
		m.limiter.Flush()
		if m.limiter.Pending() {
			return m, m.tick()
		}
		return m, nil

	case sampleDoneMsg:
		m.sampling = false
		if msg.err != nil {
			m.status = fmt.Sprintf("sample failed: %v", msg.err)
			return m, nil
		}
		if msg.res.Cancelled {
			m.status = "sample cancelled"
			return m, nil
		}
		v, err := m.sess.PickExternal(msg.res)
		if err != nil {
			m.status = fmt.Sprintf("sample rejected: %v", err)
			return m, nil
		}
		m.adoptView(v)
		m.status = "sampled " + v.Hex
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if model, cmd, handled := m.dispatchOverlayKey(msg); handled {
			return model, cmd
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) tick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(time.Duration(m.cfg.UI.ThrottleMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ---------------------------------------------------------------------------
// View synchronization
// ---------------------------------------------------------------------------

// adoptView publishes a ViewUpdate to every surface except its origin, so
// the channel being edited is never rewritten under the user's cursor.
func (m *Model) adoptView(v session.ViewUpdate) {
	m.view = v
	if v.Origin != session.SourceHexText {
		m.hexField.set(v.Hex)
	}
	if v.Origin != session.SourceRGBText {
		m.rgbField.set(fmt.Sprintf("%d, %d, %d", v.RGB.R, v.RGB.G, v.RGB.B))
	}
	if v.Origin != session.SourceHSLText {
		m.hslField.set(fmt.Sprintf("%d, %d%%, %d%%", v.HSL.H, v.HSL.S, v.HSL.L))
	}
	if v.Origin != session.SourceField {
		m.fieldX = float64(v.HSL.S) / 100
		m.fieldY = 1 - float64(v.HSL.L)/100
	}
	if m.harmonyCursor >= len(m.sess.HarmonySet(m.harmonyKind)) {
		m.harmonyCursor = 0
	}
}

// commitText parses one text row and applies it via the rate limiter. The
// parked closure re-reads the field, so a burst of keystrokes commits its
// final value.
func (m *Model) commitText(src session.Source) tea.Cmd {
	edit := func() {
		var (
			v   session.ViewUpdate
			err error
		)
		switch src {
		case session.SourceHexText:
			v, err = m.sess.SetFromHex(m.hexField.Value)
		case session.SourceRGBText:
			v, err = m.sess.SetFromRGBText(m.rgbField.Value)
		case session.SourceHSLText:
			v, err = m.sess.SetFromHSLText(m.hslField.Value)
		default:
			return
		}
		if err != nil {
			// Partial text while typing; leave prior state showing.
			return
		}
		m.adoptView(v)
	}
	if !m.limiter.Admit(src, edit) {
		return m.tick()
	}
	return nil
}

// pointerEdit routes a drag position to the session, rate-limited like
// text so a fast drag cannot starve the loop.
func (m *Model) pointerEdit(src session.Source, apply func()) tea.Cmd {
	if !m.limiter.Admit(src, apply) {
		return m.tick()
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mouse
// ---------------------------------------------------------------------------

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		lay := m.layout()
		switch {
		case lay.inField(msg.X, msg.Y):
			m.drag.Begin(session.SourceField)
			m.focus = focusField
			return m, m.applyFieldPointer(lay, msg.X, msg.Y)
		case msg.Y == lay.hueRow && lay.inBar(msg.X):
			m.drag.Begin(session.SourceHueSlider)
			m.focus = focusHue
			return m, m.applyHuePointer(lay, msg.X)
		case msg.Y == lay.alphaRow && lay.inBar(msg.X):
			m.drag.Begin(session.SourceAlphaSlider)
			m.focus = focusAlpha
			return m, m.applyAlphaPointer(lay, msg.X)
		}
		return m, nil

	case tea.MouseActionMotion:
		src, ok := m.drag.Active()
		if !ok {
			return m, nil
		}
		lay := m.layout()
		switch src {
		case session.SourceField:
			return m, m.applyFieldPointer(lay, msg.X, msg.Y)
		case session.SourceHueSlider:
			return m, m.applyHuePointer(lay, msg.X)
		case session.SourceAlphaSlider:
			return m, m.applyAlphaPointer(lay, msg.X)
		}
		return m, nil

	case tea.MouseActionRelease:
		// Any top-level release closes an open drag, even one whose
		// terminating event was missed.
		m.drag.CloseAny()
		return m, nil
	}
	return m, nil
}

func (m *Model) applyFieldPointer(lay layout, mx, my int) tea.Cmd {
	x := float64(mx-lay.fieldLeft) / float64(lay.fieldW-1)
	y := float64(my-lay.fieldTop) / float64(fieldHeight-1)
	m.fieldX = clamp01(x)
	m.fieldY = clamp01(y)
	return m.pointerEdit(session.SourceField, func() {
		m.adoptView(m.sess.SetFromPointer(m.fieldX, m.fieldY))
	})
}

func (m *Model) applyHuePointer(lay layout, mx int) tea.Cmd {
	deg := 360 * float64(mx-lay.barLeft) / float64(lay.barW-1)
	return m.pointerEdit(session.SourceHueSlider, func() {
		m.adoptView(m.sess.SetHue(deg))
	})
}

func (m *Model) applyAlphaPointer(lay layout, mx int) tea.Cmd {
	a := float64(mx-lay.barLeft) / float64(lay.barW-1)
	return m.pointerEdit(session.SourceAlphaSlider, func() {
		m.adoptView(m.sess.SetAlpha(a))
	})
}

// ---------------------------------------------------------------------------
// Keyboard
// ---------------------------------------------------------------------------

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// next launch resumes the last color and theme
		m.cfg.UI.StartColor = m.view.Hex
		m.cfg.UI.Theme = m.theme.Name
		_ = config.Save(m.cfg)
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextFocus):
		m.focus = (m.focus + 1) % focusAreaCount
		return m, nil

	case key.Matches(msg, m.keys.PrevFocus):
		m.focus = (m.focus - 1 + focusAreaCount) % focusAreaCount
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		if m.prefs != nil {
			if err := m.prefs.Set(m.ctx, PrefKeyTheme, m.theme.Name); err != nil {
				m.status = fmt.Sprintf("theme not persisted: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.overlay = overlaySaveName
		m.modal.set("")
		return m, nil

	case key.Matches(msg, m.keys.Import):
		m.overlay = overlayImportPath
		m.modal.set("palettes.json")
		return m, nil

	case key.Matches(msg, m.keys.Export):
		m.overlay = overlayExportPath
		m.modal.set("palettes.json")
		return m, nil

	case key.Matches(msg, m.keys.Sample):
		return m, m.startSample()
	}

	switch m.focus {
	case focusField:
		return m.updateFieldKey(msg)
	case focusHue:
		return m.updateHueKey(msg)
	case focusAlpha:
		return m.updateAlphaKey(msg)
	case focusHex:
		return m.updateTextKey(&m.hexField, session.SourceHexText, msg)
	case focusRGB:
		return m.updateTextKey(&m.rgbField, session.SourceRGBText, msg)
	case focusHSL:
		return m.updateTextKey(&m.hslField, session.SourceHSLText, msg)
	case focusHarmony:
		return m.updateHarmonyKey(msg)
	case focusPalettes:
		return m.updatePalettesKey(msg)
	}
	return m, nil
}

func (m *Model) updateFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const step = 1.0 / 24
	switch msg.String() {
	case "left":
		m.fieldX = clamp01(m.fieldX - step)
	case "right":
		m.fieldX = clamp01(m.fieldX + step)
	case "up":
		m.fieldY = clamp01(m.fieldY - step)
	case "down":
		m.fieldY = clamp01(m.fieldY + step)
	default:
		return m, nil
	}
	return m, m.pointerEdit(session.SourceField, func() {
		m.adoptView(m.sess.SetFromPointer(m.fieldX, m.fieldY))
	})
}

// Discrete key steps apply immediately rather than through the limiter:
// each press is one cheap recompute, and its target is relative to the
// live value, so parking a step would fold a burst of presses into one.
func (m *Model) updateHueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var delta float64
	switch msg.String() {
	case "left":
		delta = -1
	case "right":
		delta = 1
	case "shift+left":
		delta = -10
	case "shift+right":
		delta = 10
	default:
		return m, nil
	}
	m.adoptView(m.sess.SetHue(m.view.Hue + delta))
	return m, nil
}

func (m *Model) updateAlphaKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var delta float64
	switch msg.String() {
	case "left":
		delta = -0.01
	case "right":
		delta = 0.01
	case "shift+left":
		delta = -0.1
	case "shift+right":
		delta = 0.1
	default:
		return m, nil
	}
	m.adoptView(m.sess.SetAlpha(m.view.Alpha + delta))
	return m, nil
}

func (m *Model) updateTextKey(f *textField, src session.Source, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	if keyName == "enter" {
		// Enter commits immediately and reports a bad value, unlike the
		// silent tolerance while typing.
		var err error
		var v session.ViewUpdate
		switch src {
		case session.SourceHexText:
			v, err = m.sess.SetFromHex(f.Value)
		case session.SourceRGBText:
			v, err = m.sess.SetFromRGBText(f.Value)
		case session.SourceHSLText:
			v, err = m.sess.SetFromHSLText(f.Value)
		}
		if err != nil {
			m.status = fmt.Sprintf("not a valid %s value: %q", src, f.Value)
			return m, nil
		}
		m.adoptView(v)
		return m, nil
	}
	if f.handleKey(keyName) {
		return m, m.commitText(src)
	}
	return m, nil
}

func (m *Model) updateHarmonyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	set := m.sess.HarmonySet(m.harmonyKind)
	switch msg.String() {
	case "[":
		m.harmonyKind = prevHarmonyKind(m.harmonyKind)
		m.harmonyCursor = 0
	case "]":
		m.harmonyKind = nextHarmonyKind(m.harmonyKind)
		m.harmonyCursor = 0
	case "left":
		if m.harmonyCursor > 0 {
			m.harmonyCursor--
		}
	case "right":
		if m.harmonyCursor < len(set)-1 {
			m.harmonyCursor++
		}
	case "enter":
		m.adoptView(m.sess.SelectHarmony(set[m.harmonyCursor]))
	}
	return m, nil
}

func (m *Model) updatePalettesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	palettes := m.visiblePalettes()
	switch {
	case key.Matches(msg, m.keys.Filter):
		m.overlay = overlayPaletteFilter
		m.modal.set(m.paletteFilter)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if len(palettes) == 0 {
			return m, nil
		}
		p := palettes[m.paletteCursor]
		removed, err := m.sess.DeletePalette(m.ctx, p.ID)
		if err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
			return m, nil
		}
		if removed {
			m.status = fmt.Sprintf("deleted palette %q", p.Name)
			if m.paletteCursor >= len(m.visiblePalettes()) && m.paletteCursor > 0 {
				m.paletteCursor--
			}
			m.swatchCursor = 0
		}
		return m, nil
	}

	switch msg.String() {
	case "up":
		if m.paletteCursor > 0 {
			m.paletteCursor--
			m.swatchCursor = 0
		}
	case "down":
		if m.paletteCursor < len(palettes)-1 {
			m.paletteCursor++
			m.swatchCursor = 0
		}
	case "left":
		if m.swatchCursor > 0 {
			m.swatchCursor--
		}
	case "right":
		if len(palettes) > 0 && m.swatchCursor < len(palettes[m.paletteCursor].Colors)-1 {
			m.swatchCursor++
		}
	case "enter":
		if len(palettes) == 0 {
			return m, nil
		}
		p := palettes[m.paletteCursor]
		if m.swatchCursor < len(p.Colors) {
			m.adoptView(m.sess.SelectPalette(p.Colors[m.swatchCursor]))
		}
	}
	return m, nil
}

// visiblePalettes applies the pane filter: a palette stays visible when
// its name contains the filter or is within a couple of typos of it.
func (m *Model) visiblePalettes() []session.Palette {
	all := m.sess.Palettes()
	filter := strings.ToLower(strings.TrimSpace(m.paletteFilter))
	if filter == "" {
		return all
	}
	var out []session.Palette
	for _, p := range all {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, filter) || levenshtein.ComputeDistance(name, filter) <= 2 {
			out = append(out, p)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Overlay actions
// ---------------------------------------------------------------------------

func (m *Model) submitPaletteFilter() {
	m.paletteFilter = strings.TrimSpace(m.modal.Value)
	m.paletteCursor = 0
	m.swatchCursor = 0
	m.overlay = overlayNone
}

func (m *Model) submitSaveName() {
	_, err := m.sess.SavePalette(m.ctx, m.modal.Value, m.currentSwatchSet())
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.overlay = overlayNone
	m.status = fmt.Sprintf("saved palette %q", strings.TrimSpace(m.modal.Value))
}

// currentSwatchSet is what a save captures: the current color followed by
// its harmony members.
func (m *Model) currentSwatchSet() []string {
	out := []string{m.view.Hex}
	for _, h := range m.sess.HarmonySet(m.harmonyKind) {
		hex := colormodel.Hex(colormodel.ToRGB(float64(h.H), float64(h.S), float64(h.L)))
		if hex != m.view.Hex {
			out = append(out, hex)
		}
	}
	return out
}

func (m *Model) submitImport() {
	raw, err := os.ReadFile(m.modal.Value)
	if err != nil {
		m.status = fmt.Sprintf("import failed: %v", err)
		return
	}
	n, err := m.sess.ImportPalettes(m.ctx, raw)
	if err != nil {
		m.status = fmt.Sprintf("import failed: %v", err)
		return
	}
	m.overlay = overlayNone
	m.status = fmt.Sprintf("imported %d palettes", n)
}

func (m *Model) submitExport() {
	blob, err := m.sess.ExportPalettes()
	if err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	if err := os.WriteFile(m.modal.Value, blob, 0o644); err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.overlay = overlayNone
	m.status = fmt.Sprintf("exported %d palettes to %s", len(m.sess.Palettes()), m.modal.Value)
}

func (m *Model) startSample() tea.Cmd {
	if !m.sampler.Available() {
		m.status = "pixel sampling unavailable in this terminal"
		return nil
	}
	if m.sampling {
		return nil
	}
	m.sampling = true
	sampler := m.sampler
	ctx := m.ctx
	return func() tea.Msg {
		res, err := sampler.Sample(ctx)
		return sampleDoneMsg{res: res, err: err}
	}
}

func nextHarmonyKind(k colormodel.HarmonyKind) colormodel.HarmonyKind {
	kinds := colormodel.HarmonyKinds()
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

func prevHarmonyKind(k colormodel.HarmonyKind) colormodel.HarmonyKind {
	kinds := colormodel.HarmonyKinds()
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i-1+len(kinds))%len(kinds)]
		}
	}
	return kinds[0]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
