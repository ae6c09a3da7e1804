// Copyright (c) 2023  The Go-Curses Authors
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

// Package ansiencoder is a reference StyleEncoder implementation: it turns
// cursor moves and Style values into plain ANSI/SGR escape sequences, with
// truecolor emitted directly and palette colors downsampled via
// paint.FindColor when the target terminal is not truecolor-capable.
package ansiencoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-curses/screencore/paint"
)

// Encoder implements screencore.StyleEncoder with ANSI escape sequences.
type Encoder struct {
	// TrueColor, when true, emits 24-bit "38;2;r;g;b" / "48;2;r;g;b" SGR
	// sequences for RGB colors instead of downsampling to Palette.
	TrueColor bool
	// Palette is the candidate color set used to downsample RGB colors
	// when TrueColor is false. A nil Palette falls back to the 16 standard
	// named colors.
	Palette []paint.Color
}

// NewEncoder returns a truecolor-capable Encoder.
func NewEncoder() *Encoder {
	return &Encoder{TrueColor: true}
}

// NewPaletteEncoder returns an Encoder that downsamples to palette.
func NewPaletteEncoder(palette []paint.Color) *Encoder {
	return &Encoder{TrueColor: false, Palette: palette}
}

func (e *Encoder) palette() []paint.Color {
	if len(e.Palette) > 0 {
		return e.Palette
	}
	return defaultPalette
}

var defaultPalette = []paint.Color{
	paint.ColorBlack, paint.ColorMaroon, paint.ColorGreen, paint.ColorOlive,
	paint.ColorNavy, paint.ColorPurple, paint.ColorTeal, paint.ColorSilver,
	paint.ColorGray, paint.ColorRed, paint.ColorLime, paint.ColorYellow,
	paint.ColorBlue, paint.ColorFuchsia, paint.ColorAqua, paint.ColorWhite,
}

// MoveTo returns the CSI cursor-position sequence for the 0-based (x, y)
// coordinate; ANSI cursor addressing is 1-based, so the encoder adds 1 to
// both axes.
func (e *Encoder) MoveTo(x, y int) []byte {
	return []byte(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

// ResetAttributes returns the CSI "reset all" sequence.
func (e *Encoder) ResetAttributes() []byte {
	return []byte("\x1b[0m")
}

// ApplyStyle returns the SGR sequence selecting style's foreground,
// background, and text attributes, built on top of a prior
// ResetAttributes so attributes never leak between unrelated styles.
func (e *Encoder) ApplyStyle(style paint.Style) []byte {
	fg, bg, attrs := style.Decompose()

	var codes []string

	if attrs.IsBold() {
		codes = append(codes, "1")
	}
	if attrs.IsDim() {
		codes = append(codes, "2")
	}
	if attrs.IsItalic() {
		codes = append(codes, "3")
	}
	if attrs.IsUnderline() {
		codes = append(codes, e.underlineCode(style))
	}
	if attrs.IsBlink() {
		codes = append(codes, "5")
	}
	if attrs.IsReverse() || attrs.IsInverse() {
		codes = append(codes, "7")
	}
	if attrs.IsHidden() {
		codes = append(codes, "8")
	}
	if attrs.IsStrike() {
		codes = append(codes, "9")
	}
	if attrs.IsOverline() {
		codes = append(codes, "53")
	}

	if fg.Valid() {
		codes = append(codes, e.colorCodes(fg, true)...)
	}
	if bg.Valid() {
		codes = append(codes, e.colorCodes(bg, false)...)
	}

	if len(codes) == 0 {
		return nil
	}
	return []byte("\x1b[" + strings.Join(codes, ";") + "m")
}

func (e *Encoder) underlineCode(style paint.Style) string {
	switch style.GetUnderlineStyle() {
	case paint.UnderlineStyleDouble:
		return "21"
	default:
		return "4"
	}
}

func (e *Encoder) colorCodes(c paint.Color, foreground bool) []string {
	if e.TrueColor && c.IsRGB() {
		r, g, b := c.RGB()
		if foreground {
			return []string{"38", "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
		}
		return []string{"48", "2", strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
	}

	resolved := c
	if c.IsRGB() {
		resolved = paint.FindColor(c, e.palette())
	}

	idx, ok := standardIndex(resolved)
	if !ok {
		return nil
	}
	base := 30
	if !foreground {
		base = 40
	}
	if idx >= 8 {
		base += 60
		idx -= 8
	}
	return []string{strconv.Itoa(base + idx)}
}

func standardIndex(c paint.Color) (int, bool) {
	for i, pc := range defaultPalette {
		if pc == c {
			return i, true
		}
	}
	return 0, false
}
