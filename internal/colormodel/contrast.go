package colormodel

import "math"

// Grade is a WCAG 2.x contrast classification band.
type Grade int

const (
	GradeFail Grade = iota
	GradeAALarge
	GradeAA
	GradeAAA
)

func (g Grade) String() string {
	switch g {
	case GradeAAA:
		return "AAA"
	case GradeAA:
		return "AA"
	case GradeAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// Luminance returns the WCAG 2.x relative luminance of an sRGB color,
// in [0,1]. https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func Luminance(c RGB) float64 {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func srgbToLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// in [1,21]. Symmetric in its arguments.
func ContrastRatio(a, b RGB) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// GradeRatio classifies a contrast ratio: AAA at 7:1, AA at 4.5:1,
// AA Large at 3:1, Fail below that.
func GradeRatio(ratio float64) Grade {
	switch {
	case ratio >= 7:
		return GradeAAA
	case ratio >= 4.5:
		return GradeAA
	case ratio >= 3:
		return GradeAALarge
	default:
		return GradeFail
	}
}
