package colormodel

// HarmonyKind selects a set of fixed hue offsets from a base color.
type HarmonyKind int

const (
	Complementary HarmonyKind = iota
	Analogous
	Triadic
	Tetradic
)

func (k HarmonyKind) String() string {
	switch k {
	case Complementary:
		return "complementary"
	case Analogous:
		return "analogous"
	case Triadic:
		return "triadic"
	default:
		return "tetradic"
	}
}

// HarmonyKinds lists every kind in display order.
func HarmonyKinds() []HarmonyKind {
	return []HarmonyKind{Complementary, Analogous, Triadic, Tetradic}
}

// harmonyOffsets are hue deltas in degrees relative to the base hue.
// Analogous is the 3-point variant (base ±30°); the 5-point variant with
// ±15° stops is intentionally not offered.
func harmonyOffsets(kind HarmonyKind) []int {
	switch kind {
	case Complementary:
		return []int{0, 180}
	case Analogous:
		return []int{-30, 0, 30}
	case Triadic:
		return []int{0, 120, 240}
	default:
		return []int{0, 90, 180, 270}
	}
}

// Harmonize returns the harmony set for a base color. Every member keeps
// the base's saturation and lightness; hues wrap mod 360 and are always
// non-negative.
func Harmonize(base HSL, kind HarmonyKind) []HSL {
	offs := harmonyOffsets(kind)
	out := make([]HSL, len(offs))
	for i, off := range offs {
		out[i] = HSL{H: wrapHueInt(base.H + off), S: base.S, L: base.L}
	}
	return out
}

func wrapHueInt(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
