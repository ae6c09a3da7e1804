// Copyright 2015 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package paint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents a color, which can be a named terminal color (one of the
// 256 color palette entries) or an RGB true color value.
//
// The 24 low order bits are used to store RGB values when ColorIsRGB is set.
// Otherwise the low order bits hold a palette index (0-255), and bit 25 and
// above hold reserved flags.
type Color int32

const (
	// ColorDefault is the default color, leaving use of the color
	// unchanged, or using an application defined default.
	ColorDefault Color = 0

	// ColorIsRGB is a flag used to indicate that the numeric value is not
	// a known color constant, but rather an RGB value.
	ColorIsRGB Color = 1 << 24

	// ColorValid is a flag used to indicate that a numeric value is a
	// valid color, as opposed to an unset/default value.
	ColorValid Color = 1 << 25

	// ColorReset is a special color value that instructs the driver to
	// reset to default colors.
	ColorReset Color = 1 << 26
)

// NewRGBColor returns a new Color with the given RGB values set, with 8 bits
// for each component.
func NewRGBColor(r, g, b int32) Color {
	return NewHexColor(((r & 0xff) << 16) | ((g & 0xff) << 8) | (b & 0xff))
}

// NewHexColor returns a Color for a 24-bit RGB value packed as 0xRRGGBB.
func NewHexColor(v int32) Color {
	return ColorValid | ColorIsRGB | Color(v)
}

// GetColor creates a Color from a color name (W3C name) or a string of the
// form "#RRGGBB". If the name is not recognized, ColorDefault is returned.
func GetColor(name string) Color {
	if c, ok := colorNames[strings.ToLower(name)]; ok {
		return c
	}
	if len(name) == 7 && name[0] == '#' {
		if v, err := strconv.ParseInt(name[1:], 16, 32); err == nil {
			return NewHexColor(int32(v))
		}
	}
	return ColorDefault
}

// ParseColor parses a color in either hex (#rrggbb) or name form and reports
// whether the parse succeeded.
func ParseColor(value string) (Color, bool) {
	if value == "" {
		return ColorDefault, false
	}
	c := GetColor(value)
	if c == ColorDefault && strings.ToLower(value) != "default" {
		return ColorDefault, false
	}
	return c, true
}

// Hex returns the RGB value of the color, with each component 8 bits,
// packed 0xRRGGBB. If the color is unknown, -1 is returned.
func (c Color) Hex() int32 {
	if c&ColorIsRGB != 0 {
		return int32(c & 0xffffff)
	}
	if c&ColorValid == 0 {
		return -1
	}
	v, ok := palette[int32(c&0xff)]
	if !ok {
		return -1
	}
	return v
}

// RGB returns the red, green, and blue components of the color, each in the
// range 0-255. If the color is unknown, -1, -1, -1 is returned.
func (c Color) RGB() (r, g, b int32) {
	v := c.Hex()
	if v < 0 {
		return -1, -1, -1
	}
	return (v >> 16) & 0xff, (v >> 8) & 0xff, v & 0xff
}

// IsRGB returns true if the color was defined as an RGB true color value,
// as opposed to a named palette entry.
func (c Color) IsRGB() bool {
	return c&ColorIsRGB != 0
}

// Valid returns true if c is a usable color (RGB or a recognized palette
// entry), as opposed to ColorDefault, which means "leave unchanged".
func (c Color) Valid() bool {
	return c&ColorIsRGB != 0 || c&ColorValid != 0
}

// TrueColor returns the RGB true color equivalent of the color, preserving
// its appearance when rendered on a true color capable display.
func (c Color) TrueColor() Color {
	if c&ColorIsRGB != 0 || c == ColorDefault {
		return c
	}
	v := c.Hex()
	if v < 0 {
		return c
	}
	return NewHexColor(v)
}

// String returns a human readable representation of the color, in the form
// "name[#rrggbb]" for known colors, or "unnamed[-1]" if the color is not a
// recognized value.
func (c Color) String() string {
	v := c.Hex()
	if v < 0 {
		return "unnamed[-1]"
	}
	if name, ok := colorRevNames[c.normalizedKey()]; ok {
		return fmt.Sprintf("%s[#%06x]", name, v)
	}
	return fmt.Sprintf("unnamed[#%06x]", v)
}

func (c Color) normalizedKey() Color {
	if c&ColorIsRGB != 0 {
		return c
	}
	return c &^ (ColorValid | ColorReset)
}

// PaletteColor returns the Color that corresponds to the numbered ANSI/XTerm
// 256 color palette entry (0-255).
func PaletteColor(index int) Color {
	return ColorValid | Color(index&0xff)
}

// safe_nan converts NaN results from color distance math into +Inf so that
// they sort last when hunting for the closest palette match.
func safe_nan(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

// FindColor finds the closest color in the supplied palette, using a simple
// Euclidean distance in Lab color space. This is used to map true color (or
// out of gamut palette) values down to a smaller candidate palette.
func FindColor(c Color, palette []Color) Color {
	match := ColorDefault
	dist := math.MaxFloat64
	r, g, b := c.RGB()
	if r < 0 {
		return match
	}
	cLab, _ := colorful.MakeColor(rgbColor{r, g, b})
	for _, p := range palette {
		pr, pg, pb := p.RGB()
		if pr < 0 {
			continue
		}
		pLab, _ := colorful.MakeColor(rgbColor{pr, pg, pb})
		if d := safe_nan(cLab.DistanceLab(pLab)); d < dist {
			match = p
			dist = d
		}
	}
	return match
}

type rgbColor struct {
	r, g, b int32
}

func (c rgbColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	b = uint32(c.b) * 0x101
	a = 0xffff
	return
}

// Named colors, as per the W3C/SVG extended color keyword list, matching
// tcell's historical palette numbering. Only the subset exercised by this
// package's callers and tests is declared; the rest of the 256 color cube
// is reachable via PaletteColor.
const (
	ColorBlack Color = ColorValid + iota
	ColorMaroon
	ColorGreen
	ColorOlive
	ColorNavy
	ColorPurple
	ColorTeal
	ColorSilver
	ColorGray
	ColorRed
	ColorLime
	ColorYellow
	ColorBlue
	ColorFuchsia
	ColorAqua
	ColorWhite
)

var (
	Color217   = NewHexColor(0xffafaf)
	Color173   = NewHexColor(0xd7875f)
	ColorOrange      = NewHexColor(0xffa500)
	ColorOrangeRed   = NewHexColor(0xff4500)
	ColorAliceBlue   = NewHexColor(0xf0f8ff)
	ColorPink        = NewHexColor(0xffc0cb)
	ColorSienna      = NewHexColor(0xa0522d)
)

var palette = map[int32]int32{
	int32(ColorBlack &^ ColorValid):   0x000000,
	int32(ColorMaroon &^ ColorValid):  0x800000,
	int32(ColorGreen &^ ColorValid):   0x008000,
	int32(ColorOlive &^ ColorValid):   0x808000,
	int32(ColorNavy &^ ColorValid):    0x000080,
	int32(ColorPurple &^ ColorValid):  0x800080,
	int32(ColorTeal &^ ColorValid):    0x008080,
	int32(ColorSilver &^ ColorValid):  0xc0c0c0,
	int32(ColorGray &^ ColorValid):    0x808080,
	int32(ColorRed &^ ColorValid):     0xff0000,
	int32(ColorLime &^ ColorValid):    0x00ff00,
	int32(ColorYellow &^ ColorValid):  0xffff00,
	int32(ColorBlue &^ ColorValid):    0x0000ff,
	int32(ColorFuchsia &^ ColorValid): 0xff00ff,
	int32(ColorAqua &^ ColorValid):    0x00ffff,
	int32(ColorWhite &^ ColorValid):   0xffffff,
}

var colorNames = map[string]Color{
	"black":     ColorBlack,
	"maroon":    ColorMaroon,
	"green":     ColorGreen,
	"olive":     ColorOlive,
	"navy":      ColorNavy,
	"purple":    ColorPurple,
	"teal":      ColorTeal,
	"silver":    ColorSilver,
	"gray":      ColorGray,
	"grey":      ColorGray,
	"red":       ColorRed,
	"lime":      ColorLime,
	"yellow":    ColorYellow,
	"blue":      ColorBlue,
	"fuchsia":   ColorFuchsia,
	"aqua":      ColorAqua,
	"white":     ColorWhite,
	"orange":    ColorOrange,
	"orangered": ColorOrangeRed,
	"aliceblue": ColorAliceBlue,
	"pink":      ColorPink,
	"sienna":    ColorSienna,
}

var colorRevNames = func() map[Color]string {
	m := make(map[Color]string, len(colorNames))
	for name, c := range colorNames {
		m[c.normalizedKey()] = name
	}
	return m
}()
