// Package session owns the single authoritative color value and the palette
// collection. Edits arrive from any input channel, are converted to the
// canonical RGB form, and republished as one consistent ViewUpdate. The
// session has no internal parallelism: all mutation happens on the caller's
// single control thread.
package session

import (
	"fmt"
	"time"

	"github.com/CodePen-Alt/ColorPicker/internal/colormodel"
)

// Source tags the input channel an edit originated from. The renderer uses
// it to skip rewriting the surface the user is editing, which is what keeps
// the five synced representations from fighting each other.
type Source int

const (
	SourceNone Source = iota
	SourceField
	SourceHueSlider
	SourceAlphaSlider
	SourceHexText
	SourceRGBText
	SourceHSLText
	SourceHarmony
	SourcePalette
	SourceSample
)

func (s Source) String() string {
	switch s {
	case SourceField:
		return "field"
	case SourceHueSlider:
		return "hue"
	case SourceAlphaSlider:
		return "alpha"
	case SourceHexText:
		return "hex"
	case SourceRGBText:
		return "rgb"
	case SourceHSLText:
		return "hsl"
	case SourceHarmony:
		return "harmony"
	case SourcePalette:
		return "palette"
	case SourceSample:
		return "sample"
	default:
		return "none"
	}
}

// Contrast pairs a WCAG ratio with its classification band.
type Contrast struct {
	Ratio float64
	Grade colormodel.Grade
}

// ViewUpdate is the single source of truth every display surface redraws
// from. Hex, RGB, and HSL always denote the same color, and the contrast
// figures are computed against that color, never a stale one.
//
// Hue is the session's sticky hue: when the color is achromatic the HSL
// view reports H=0 by definition, but the hue slider should keep showing
// the hue the user last chose.
type ViewUpdate struct {
	Hex           string
	RGB           colormodel.RGB
	HSL           colormodel.HSL
	Hue           float64
	Alpha         float64
	Name          string
	ContrastWhite Contrast
	ContrastBlack Contrast
	Origin        Source
	Changed       bool
}

// SampleResult is the outcome of an asynchronous external pixel pick.
// Cancellation is not an error: a cancelled pick leaves the session
// untouched.
type SampleResult struct {
	Hex       string
	Cancelled bool
}

// Session is the synchronization engine. Construct with New; all methods
// must be called from a single goroutine.
type Session struct {
	rgb   colormodel.RGB
	alpha float64
	hue   float64 // survives saturation reaching zero

	palettes []Palette
	store    Store
	now      func() time.Time

	last ViewUpdate
}

// New returns a session starting at the given color with full opacity.
// Palettes are not loaded until LoadPalettes is called.
func New(store Store, start colormodel.RGB) *Session {
	s := &Session{
		rgb:   start,
		alpha: 1,
		store: store,
		now:   time.Now,
	}
	if h, chromatic := floatHue(start); chromatic {
		s.hue = h
	}
	s.last = s.view(SourceNone, true)
	return s
}

// SetClock replaces the session's time source. Tests use this to pin
// palette creation timestamps.
func (s *Session) SetClock(now func() time.Time) { s.now = now }

// View returns the most recent ViewUpdate without mutating anything.
func (s *Session) View() ViewUpdate { return s.last }

// SetFromPointer applies a 2D field position. x and y are normalized to
// [0,1]: saturation = x·100 (right is more saturated) and lightness =
// (1−y)·100 (down is darker). The sticky hue is kept as-is.
func (s *Session) SetFromPointer(x, y float64) ViewUpdate {
	x = clamp01(x)
	y = clamp01(y)
	rgb := colormodel.ToRGB(s.hue, x*100, (1-y)*100)
	return s.apply(rgb, s.alpha, s.hue, SourceField)
}

// SetHue rotates the hue while keeping the current saturation and
// lightness. An achromatic color stays achromatic but remembers the new
// hue for later saturation edits.
func (s *Session) SetHue(deg float64) ViewUpdate {
	hue := colormodel.WrapHue(deg)
	_, sat, light := colormodel.ToHSLFloat(s.rgb)
	rgb := colormodel.ToRGB(hue, sat, light)
	return s.apply(rgb, s.alpha, hue, SourceHueSlider)
}

// SetAlpha sets the opacity, clamped to [0,1].
func (s *Session) SetAlpha(v float64) ViewUpdate {
	return s.apply(s.rgb, clamp01(v), s.hue, SourceAlphaSlider)
}

// SetFromHex applies typed hex input. A CSS color name (with small typos
// tolerated) is accepted where a hex string would be. Invalid input
// returns colormodel.ErrInvalidFormat and leaves the session untouched.
func (s *Session) SetFromHex(text string) (ViewUpdate, error) {
	rgb, err := colormodel.ParseHex(text)
	if err != nil {
		named, ok := colormodel.LookupName(text)
		if !ok {
			return s.last, err
		}
		rgb = named
	}
	return s.applyRGBEdit(rgb, SourceHexText), nil
}

// SetFromRGBText applies typed "r, g, b" input.
func (s *Session) SetFromRGBText(text string) (ViewUpdate, error) {
	rgb, err := colormodel.ParseRGBText(text)
	if err != nil {
		return s.last, err
	}
	return s.applyRGBEdit(rgb, SourceRGBText), nil
}

// SetFromHSLText applies typed "h, s, l" input. The typed hue becomes the
// sticky hue verbatim, even when saturation is zero.
func (s *Session) SetFromHSLText(text string) (ViewUpdate, error) {
	h, sat, light, err := colormodel.ParseHSLText(text)
	if err != nil {
		return s.last, err
	}
	rgb := colormodel.ToRGB(float64(h), float64(sat), float64(light))
	return s.apply(rgb, s.alpha, colormodel.WrapHue(float64(h)), SourceHSLText), nil
}

// SelectHarmony adopts a harmony member as the current color. The member
// is valid by construction, so its hue is taken verbatim.
func (s *Session) SelectHarmony(m colormodel.HSL) ViewUpdate {
	rgb := colormodel.ToRGB(float64(m.H), float64(m.S), float64(m.L))
	return s.apply(rgb, s.alpha, float64(m.H), SourceHarmony)
}

// SelectPalette adopts a stored palette color. Stored hexes were validated
// on save, but a corrupt store entry degrades to a no-op rather than a
// panic.
func (s *Session) SelectPalette(hex string) ViewUpdate {
	rgb, err := colormodel.ParseHex(hex)
	if err != nil {
		return s.last
	}
	return s.applyRGBEdit(rgb, SourcePalette)
}

// PickExternal applies the result of an asynchronous pixel sample. A
// cancelled sample is silently ignored.
func (s *Session) PickExternal(res SampleResult) (ViewUpdate, error) {
	if res.Cancelled {
		v := s.last
		v.Changed = false
		return v, nil
	}
	rgb, err := colormodel.ParseHex(res.Hex)
	if err != nil {
		return s.last, fmt.Errorf("sampled pixel: %w", err)
	}
	return s.applyRGBEdit(rgb, SourceSample), nil
}

// HarmonySet returns the harmony members for the current color.
func (s *Session) HarmonySet(kind colormodel.HarmonyKind) []colormodel.HSL {
	return colormodel.Harmonize(s.displayHSL(), kind)
}

// applyRGBEdit handles edits that supply a full RGB value. A chromatic
// result re-derives the sticky hue; an achromatic one preserves it, so
// dragging through gray and back does not snap the hue to red.
func (s *Session) applyRGBEdit(rgb colormodel.RGB, src Source) ViewUpdate {
	hue := s.hue
	if h, chromatic := floatHue(rgb); chromatic {
		hue = h
	}
	return s.apply(rgb, s.alpha, hue, src)
}

// apply is the single mutation point. Re-applying an identical edit is a
// no-op flagged with Changed=false, which makes update storms idempotent.
func (s *Session) apply(rgb colormodel.RGB, alpha, hue float64, src Source) ViewUpdate {
	if rgb == s.rgb && alpha == s.alpha && hue == s.hue {
		v := s.view(src, false)
		s.last = v
		return v
	}
	s.rgb = rgb
	s.alpha = alpha
	s.hue = hue
	v := s.view(src, true)
	s.last = v
	return v
}

func (s *Session) view(src Source, changed bool) ViewUpdate {
	white := colormodel.RGB{R: 255, G: 255, B: 255}
	black := colormodel.RGB{}
	cw := colormodel.ContrastRatio(s.rgb, white)
	cb := colormodel.ContrastRatio(s.rgb, black)
	return ViewUpdate{
		Hex:           colormodel.Hex(s.rgb),
		RGB:           s.rgb,
		HSL:           s.displayHSL(),
		Hue:           s.hue,
		Alpha:         s.alpha,
		Name:          colormodel.ClosestName(s.rgb),
		ContrastWhite: Contrast{Ratio: cw, Grade: colormodel.GradeRatio(cw)},
		ContrastBlack: Contrast{Ratio: cb, Grade: colormodel.GradeRatio(cb)},
		Origin:        src,
		Changed:       changed,
	}
}

func (s *Session) displayHSL() colormodel.HSL {
	return colormodel.ToHSL(s.rgb)
}

// floatHue reports the hue of c and whether c is chromatic. Achromatic
// colors have no defined hue.
func floatHue(c colormodel.RGB) (float64, bool) {
	h, sat, _ := colormodel.ToHSLFloat(c)
	if sat == 0 {
		return 0, false
	}
	return h, true
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
