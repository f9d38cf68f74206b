package colormodel

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// namedColors is a curated subset of the CSS named colors, enough to make
// name lookup and closest-name labelling useful without shipping the full
// 148-entry table.
var namedColors = map[string]RGB{
	"black":     {0x00, 0x00, 0x00},
	"white":     {0xff, 0xff, 0xff},
	"gray":      {0x80, 0x80, 0x80},
	"silver":    {0xc0, 0xc0, 0xc0},
	"red":       {0xff, 0x00, 0x00},
	"maroon":    {0x80, 0x00, 0x00},
	"orange":    {0xff, 0xa5, 0x00},
	"yellow":    {0xff, 0xff, 0x00},
	"olive":     {0x80, 0x80, 0x00},
	"lime":      {0x00, 0xff, 0x00},
	"green":     {0x00, 0x80, 0x00},
	"aqua":      {0x00, 0xff, 0xff},
	"teal":      {0x00, 0x80, 0x80},
	"blue":      {0x00, 0x00, 0xff},
	"navy":      {0x00, 0x00, 0x80},
	"fuchsia":   {0xff, 0x00, 0xff},
	"purple":    {0x80, 0x00, 0x80},
	"indigo":    {0x4b, 0x00, 0x82},
	"violet":    {0xee, 0x82, 0xee},
	"pink":      {0xff, 0xc0, 0xcb},
	"salmon":    {0xfa, 0x80, 0x72},
	"coral":     {0xff, 0x7f, 0x50},
	"gold":      {0xff, 0xd7, 0x00},
	"khaki":     {0xf0, 0xe6, 0x8c},
	"brown":     {0xa5, 0x2a, 0x2a},
	"tan":       {0xd2, 0xb4, 0x8c},
	"crimson":   {0xdc, 0x14, 0x3c},
	"tomato":    {0xff, 0x63, 0x47},
	"orchid":    {0xda, 0x70, 0xd6},
	"plum":      {0xdd, 0xa0, 0xdd},
	"sienna":    {0xa0, 0x52, 0x2d},
	"turquoise": {0x40, 0xe0, 0xd0},
	"lavender":  {0xe6, 0xe6, 0xfa},
	"beige":     {0xf5, 0xf5, 0xdc},
	"ivory":     {0xff, 0xff, 0xf0},
	"skyblue":   {0x87, 0xce, 0xeb},
}

// maxNameDistance bounds fuzzy matching so "aqau" finds aqua but "zzz"
// finds nothing.
const maxNameDistance = 2

// LookupName resolves a color name, tolerating small typos. The match is
// case-insensitive; exact matches win over fuzzy ones.
func LookupName(query string) (RGB, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return RGB{}, false
	}
	if c, ok := namedColors[q]; ok {
		return c, true
	}
	best := maxNameDistance + 1
	bestName := ""
	for name := range namedColors {
		d := levenshtein.ComputeDistance(q, name)
		if d < best || (d == best && name < bestName) {
			best = d
			bestName = name
		}
	}
	if best > maxNameDistance {
		return RGB{}, false
	}
	return namedColors[bestName], true
}

// ClosestName returns the named color nearest to c by squared channel
// distance, prefixed "~" when the match is not exact.
func ClosestName(c RGB) string {
	bestDist := -1
	bestName := ""
	for name, nc := range namedColors {
		d := sqDist(c, nc)
		if bestDist < 0 || d < bestDist || (d == bestDist && name < bestName) {
			bestDist = d
			bestName = name
		}
	}
	if bestDist == 0 {
		return bestName
	}
	return "~" + bestName
}

func sqDist(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
