// Package colormodel implements sRGB/HSL conversion, WCAG contrast math,
// and color harmony generation. Everything here is pure: no state, no I/O.
package colormodel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for malformed hex, RGB, or HSL text. Callers
// drop the edit and keep their prior state.
var ErrInvalidFormat = errors.New("invalid color format")

// RGB is the canonical color value: one byte per channel.
type RGB struct {
	R, G, B uint8
}

// HSL is a derived, display-rounded view of an RGB value.
// H is in [0,360), S and L in [0,100]. Achromatic colors have H=0, S=0.
type HSL struct {
	H, S, L int
}

func (c RGB) String() string { return Hex(c) }

func (h HSL) String() string { return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L) }

// ParseHex parses a 6-digit hex color with an optional leading '#'.
// Anything else fails with ErrInvalidFormat.
func ParseHex(s string) (RGB, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(t) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats an RGB value as lowercase "#rrggbb".
func Hex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Clamp8 rounds to the nearest integer and clamps into [0,255].
func Clamp8(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// ToHSL converts an RGB value to its rounded HSL view. The rounding is for
// display only: a rounded hue can be off by enough to move a saturated
// channel several steps, so state derivation must go through ToHSLFloat.
func ToHSL(c RGB) HSL {
	h, s, l := ToHSLFloat(c)
	hi := int(math.Round(h)) % 360
	return HSL{H: hi, S: int(math.Round(s)), L: int(math.Round(l))}
}

// ToHSLFloat returns h in [0,360), s and l in [0,100], unrounded.
// ToRGB(ToHSLFloat(c)) reproduces c within ±1 per channel.
func ToHSLFloat(c RGB) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2
	if max == min {
		return 0, 0, l * 100
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s * 100, l * 100
}

// ToRGB converts HSL components to RGB. h may be any real number of degrees
// (wrapped mod 360, negatives allowed); s and l are percentages in [0,100].
func ToRGB(h, s, l float64) RGB {
	h = WrapHue(h) / 360
	s = clampPct(s) / 100
	l = clampPct(l) / 100
	if s == 0 {
		v := Clamp8(l * 255)
		return RGB{R: v, G: v, B: v}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: Clamp8(hueToChannel(p, q, h+1.0/3) * 255),
		G: Clamp8(hueToChannel(p, q, h) * 255),
		B: Clamp8(hueToChannel(p, q, h-1.0/3) * 255),
	}
}

// hueToChannel is the standard piecewise hue-to-channel function; t is the
// hue offset for one channel, normalized to [0,1).
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// WrapHue maps any hue in degrees onto [0,360), keeping 359 and 1 two
// degrees apart across the boundary.
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ParseRGBText parses "r, g, b" or "rgb(r, g, b)" with integer channels
// in [0,255].
func ParseRGBText(s string) (RGB, error) {
	parts, err := splitTriple(s, "rgb")
	if err != nil {
		return RGB{}, err
	}
	var ch [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		ch[i] = n
	}
	return RGB{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}, nil
}

// ParseHSLText parses "h, s, l" or "hsl(h, s%, l%)" with h in [0,360] and
// s, l in [0,100]. Percent signs are optional.
func ParseHSLText(s string) (h, sat, l int, err error) {
	parts, perr := splitTriple(s, "hsl")
	if perr != nil {
		return 0, 0, 0, perr
	}
	var vals [3]int
	for i, p := range parts {
		p = strings.TrimSuffix(p, "%")
		n, aerr := strconv.Atoi(strings.TrimSpace(p))
		if aerr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		vals[i] = n
	}
	if vals[0] < 0 || vals[0] > 360 || vals[1] < 0 || vals[1] > 100 || vals[2] < 0 || vals[2] > 100 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return vals[0], vals[1], vals[2], nil
}

// splitTriple accepts "a, b, c" or "fn(a, b, c)" and returns the three
// trimmed components.
func splitTriple(s, fn string) ([]string, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(t, fn+"(") && strings.HasSuffix(t, ")") {
		t = strings.TrimSuffix(strings.TrimPrefix(t, fn+"("), ")")
	}
	parts := strings.Split(t, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}
	return parts, nil
}
