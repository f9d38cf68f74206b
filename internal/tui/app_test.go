package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CodePen-Alt/ColorPicker/internal/colormodel"
	"github.com/CodePen-Alt/ColorPicker/internal/config"
	"github.com/CodePen-Alt/ColorPicker/internal/session"
)

type fakeStore struct {
	data map[string]string
	sets int
}

func newFakeStore() *fakeStore { return &fakeStore{data: map[string]string{}} }

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	f.sets++
	f.data[key] = value
	return nil
}

func testConfig() config.Config {
	return config.Config{
		UI: config.UIConfig{
			Theme:      "dark",
			StartColor: "#4f46e5",
			ThrottleMS: 50,
			FieldWidth: 48,
		},
	}
}

func newTestModel(t *testing.T) (*Model, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	sess := session.New(store, colormodel.RGB{R: 79, G: 70, B: 229})
	return New(context.Background(), testConfig(), sess, nil, store), store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(m *Model, msg tea.Msg) *Model {
	next, _ := m.Update(msg)
	return next.(*Model)
}

func TestInitialViewSyncsAllSurfaces(t *testing.T) {
	m, _ := newTestModel(t)

	if m.hexField.Value != "#4f46e5" {
		t.Fatalf("hex field = %q, want #4f46e5", m.hexField.Value)
	}
	if m.rgbField.Value != "79, 70, 229" {
		t.Fatalf("rgb field = %q", m.rgbField.Value)
	}
	if !strings.Contains(m.hslField.Value, "%") {
		t.Fatalf("hsl field = %q, want percent forms", m.hslField.Value)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m, _ := newTestModel(t)

	if m.focus != focusField {
		t.Fatalf("initial focus = %v", m.focus)
	}
	for i := 0; i < int(focusAreaCount); i++ {
		m = send(m, keyMsg("tab"))
	}
	if m.focus != focusField {
		t.Fatalf("focus after full cycle = %v, want field", m.focus)
	}
}

func TestEnterCommitsRGBTextAndKeepsOrigin(t *testing.T) {
	m, _ := newTestModel(t)
	m.focus = focusRGB
	m.rgbField.set("255, 0, 0")

	m = send(m, keyMsg("enter"))

	if m.view.Hex != "#ff0000" {
		t.Fatalf("hex after rgb edit = %q", m.view.Hex)
	}
	if m.view.Origin != session.SourceRGBText {
		t.Fatalf("origin = %v", m.view.Origin)
	}
	// the edited row keeps the user's text; the others resync
	if m.rgbField.Value != "255, 0, 0" {
		t.Fatalf("rgb field rewritten to %q", m.rgbField.Value)
	}
	if m.hexField.Value != "#ff0000" {
		t.Fatalf("hex field = %q", m.hexField.Value)
	}
	if m.hslField.Value != "0, 100%, 50%" {
		t.Fatalf("hsl field = %q", m.hslField.Value)
	}
}

func TestEnterRejectsBadTextWithStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m.focus = focusHex
	m.hexField.set("#nothex")

	before := m.view.Hex
	m = send(m, keyMsg("enter"))

	if m.view.Hex != before {
		t.Fatalf("bad hex changed state to %q", m.view.Hex)
	}
	if !strings.Contains(m.status, "not a valid") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestTypedKeysCommitThroughLimiter(t *testing.T) {
	m, _ := newTestModel(t)
	clock := time.Unix(1000, 0)
	m.limiter = session.NewLimiter(50*time.Millisecond, func() time.Time { return clock })
	m.focus = focusHex
	m.hexField.set("")

	for _, r := range "#00ff00" {
		m = send(m, keyMsg(string(r)))
	}
	if !m.limiter.Pending() {
		t.Fatal("burst did not park an edit")
	}

	// the parked closure re-reads the field, so the flush commits the
	// final text of the burst
	clock = clock.Add(60 * time.Millisecond)
	m = send(m, tickMsg{})

	if m.view.Hex != "#00ff00" {
		t.Fatalf("hex after flush = %q", m.view.Hex)
	}
}

func TestHueKeyStepsAccumulateInBurst(t *testing.T) {
	m, _ := newTestModel(t)
	// frozen clock: a limited channel would park everything after the
	// first event in this burst
	clock := time.Unix(1000, 0)
	m.limiter = session.NewLimiter(50*time.Millisecond, func() time.Time { return clock })
	m.focus = focusHue

	before := m.view.Hue
	for i := 0; i < 5; i++ {
		m = send(m, keyMsg("right"))
	}

	if got := m.view.Hue; got < before+4.999 || got > before+5.001 {
		t.Fatalf("hue after 5 right steps = %v, want %v", got, before+5)
	}
	if m.limiter.Pending() {
		t.Fatal("discrete key steps must not be parked")
	}
}

func TestAlphaKeyStepsAccumulateInBurst(t *testing.T) {
	m, _ := newTestModel(t)
	clock := time.Unix(1000, 0)
	m.limiter = session.NewLimiter(50*time.Millisecond, func() time.Time { return clock })
	m.focus = focusAlpha

	for i := 0; i < 5; i++ {
		m = send(m, keyMsg("left"))
	}

	if got := m.view.Alpha; got < 0.949 || got > 0.951 {
		t.Fatalf("alpha after 5 left steps = %v, want 0.95", got)
	}
}

func TestHueSliderMousePress(t *testing.T) {
	m, _ := newTestModel(t)
	lay := m.layout()

	m = send(m, tea.MouseMsg{
		X:      lay.barLeft + (lay.barW-1)/2,
		Y:      lay.hueRow,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if m.view.Origin != session.SourceHueSlider {
		t.Fatalf("origin = %v", m.view.Origin)
	}
	if m.view.Hue < 160 || m.view.Hue > 200 {
		t.Fatalf("hue = %v, want near the middle of the bar", m.view.Hue)
	}
	if _, active := m.drag.Active(); !active {
		t.Fatal("press did not open a drag")
	}

	m = send(m, tea.MouseMsg{Action: tea.MouseActionRelease})
	if _, active := m.drag.Active(); active {
		t.Fatal("release did not close the drag")
	}
}

func TestFieldMousePressSetsSaturationLightness(t *testing.T) {
	m, _ := newTestModel(t)
	lay := m.layout()

	// bottom-left corner is black regardless of hue
	m = send(m, tea.MouseMsg{
		X:      lay.fieldLeft,
		Y:      lay.fieldTop + fieldHeight - 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if m.view.Hex != "#000000" {
		t.Fatalf("bottom-left = %q, want #000000", m.view.Hex)
	}
	if m.view.Origin != session.SourceField {
		t.Fatalf("origin = %v", m.view.Origin)
	}
}

func TestSavePaletteOverlayFlow(t *testing.T) {
	m, store := newTestModel(t)

	m = send(m, keyMsg("ctrl+s"))
	if m.overlay != overlaySaveName {
		t.Fatalf("overlay = %v, want save", m.overlay)
	}
	for _, r := range "brand" {
		m = send(m, keyMsg(string(r)))
	}
	m = send(m, keyMsg("enter"))

	if m.overlay != overlayNone {
		t.Fatalf("overlay still open, status %q", m.status)
	}
	got := m.sess.Palettes()
	if len(got) != 1 || got[0].Name != "brand" {
		t.Fatalf("palettes = %+v", got)
	}
	if got[0].Colors[0] != "#4f46e5" {
		t.Fatalf("first swatch = %q", got[0].Colors[0])
	}
	if _, ok := store.data[session.StoreKeyPalettes]; !ok {
		t.Fatal("palette not persisted")
	}
}

func TestOverlayEscCancels(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, keyMsg("ctrl+s"))
	m = send(m, keyMsg("esc"))

	if m.overlay != overlayNone {
		t.Fatal("esc did not close the overlay")
	}
	if len(m.sess.Palettes()) != 0 {
		t.Fatal("cancel still saved a palette")
	}
}

func TestOverlaySwallowsGlobalKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, keyMsg("ctrl+s"))
	m = send(m, keyMsg("s"))
	if m.modal.Value != "s" {
		t.Fatalf("modal value = %q", m.modal.Value)
	}
	// tab is text input territory while a modal is open
	m = send(m, keyMsg("tab"))
	if m.focus != focusField {
		t.Fatalf("tab leaked through the modal, focus = %v", m.focus)
	}
}

func TestThemeTogglePersists(t *testing.T) {
	m, store := newTestModel(t)

	m = send(m, keyMsg("ctrl+t"))

	if m.theme.Name != "light" {
		t.Fatalf("theme = %q, want light", m.theme.Name)
	}
	if store.data[PrefKeyTheme] != "light" {
		t.Fatalf("persisted theme = %q", store.data[PrefKeyTheme])
	}
}

func TestSampleUnavailableSetsStatus(t *testing.T) {
	m, _ := newTestModel(t)

	m.status = ""
	m = send(m, keyMsg("ctrl+p"))

	if !strings.Contains(m.status, "unavailable") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestHarmonyCycleAndSelect(t *testing.T) {
	m, _ := newTestModel(t)
	m.focus = focusHarmony

	m = send(m, keyMsg("]"))
	if m.harmonyKind != colormodel.Analogous {
		t.Fatalf("kind = %v, want analogous", m.harmonyKind)
	}

	m = send(m, keyMsg("right"))
	m = send(m, keyMsg("enter"))
	if m.view.Origin != session.SourceHarmony {
		t.Fatalf("origin = %v", m.view.Origin)
	}
}

func TestPaletteFilterNarrowsAndTolerateTypos(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	if _, err := m.sess.SavePalette(ctx, "brand", []string{"#ff0000"}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.sess.SavePalette(ctx, "ocean", []string{"#0000ff"}); err != nil {
		t.Fatal(err)
	}
	m.focus = focusPalettes

	m = send(m, keyMsg("/"))
	if m.overlay != overlayPaletteFilter {
		t.Fatalf("overlay = %v, want filter", m.overlay)
	}
	for _, r := range "ocaen" { // two transposition typos
		m = send(m, keyMsg(string(r)))
	}
	m = send(m, keyMsg("enter"))

	got := m.visiblePalettes()
	if len(got) != 1 || got[0].Name != "ocean" {
		t.Fatalf("filtered = %+v", got)
	}

	// clearing the filter restores everything
	m = send(m, keyMsg("/"))
	for range "ocaen" {
		m = send(m, keyMsg("backspace"))
	}
	m = send(m, keyMsg("enter"))
	if len(m.visiblePalettes()) != 2 {
		t.Fatal("cleared filter still hides palettes")
	}
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.View()
	if !strings.Contains(out, "#4f46e5") {
		t.Fatalf("view missing current hex:\n%s", out)
	}
	if !strings.Contains(out, "palettes (0)") {
		t.Fatal("view missing palette pane")
	}

	m = send(m, keyMsg("ctrl+s"))
	if !strings.Contains(m.View(), "Palette name") {
		t.Fatal("view missing save prompt")
	}
}
