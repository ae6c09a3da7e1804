// Copyright 2020 The TCell Authors
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
	"regexp"
	"strconv"
)

// Style represents a complete text style, including both foreground color,
// background color, and additional attributes such as "bold" or "underline".
//
// Note that not all terminals can display all colors or attributes, and
// many might have specific incompatibilities between specific attributes
// and color combinations.
//
// To use Style, just declare a variable of its type.
type Style struct {
	fg          Color
	bg          Color
	attrs       AttrMask
	ulStyle     UnderlineStyle
	ulColor     Color
}

// UnderlineStyle describes the visual form an underline takes, independent
// of whether the underline attribute itself is set.
type UnderlineStyle int

const (
	UnderlineStyleSolid UnderlineStyle = iota
	UnderlineStyleDouble
	UnderlineStyleCurly
	UnderlineStyleDotted
	UnderlineStyleDashed
)

func (s Style) String() string {
	return fmt.Sprintf(
		"{%v,%v,%v}",
		s.fg.String(),
		s.bg.String(),
		s.attrs,
	)
}

var rxParseStyle = regexp.MustCompile(`(?i)^{??(#[a-f0-9]{6}|[a-z]+),(#[a-f0-9]{6}|[a-z]+),(\d+)}??$`)

func ParseStyle(value string) (style Style, err error) {
	if rxParseStyle.MatchString(value) {
		m := rxParseStyle.FindStringSubmatch(value)
		if len(m) == 4 {
			var ok bool
			var fg, bg Color
			var attrs AttrMask
			if fg, ok = ParseColor(m[1]); !ok {
				return StyleDefault, fmt.Errorf("invalid style fg value: %v", m[1])
			}
			if bg, ok = ParseColor(m[2]); !ok {
				return StyleDefault, fmt.Errorf("invalid style bg value: %v", m[2])
			}
			if i, err := strconv.Atoi(m[3]); err != nil {
				return StyleDefault, fmt.Errorf("invalid style attr value: %v", m[3])
			} else {
				attrs = AttrMask(i)
			}
			style = Style{
				fg:    fg,
				bg:    bg,
				attrs: attrs,
			}
			return
		}
		return StyleDefault, fmt.Errorf("invalid style match: %v", m)
	}
	return StyleDefault, fmt.Errorf("invalid style value: %v", value)
}

// StyleDefault represents a default style, based upon the context.
// It is the zero value.
var StyleDefault Style

// StyleInvalid is just an arbitrary invalid style used internally.
var StyleInvalid = Style{attrs: AttrInvalid}

// Foreground returns a new style based on s, with the foreground color set
// as requested.  ColorDefault can be used to select the global default.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns a new style based on s, with the background color set
// as requested.  ColorDefault can be used to select the global default.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Decompose breaks a style up, returning the foreground, background,
// and other attributes.
func (s Style) Decompose() (fg Color, bg Color, attr AttrMask) {
	return s.fg, s.bg, s.attrs
}

// UnderlineStyle returns a new style based on s, with the underline style
// set as requested. The underline style only has a visible effect when the
// underline attribute is also set.
func (s Style) UnderlineStyle(us UnderlineStyle) Style {
	s.ulStyle = us
	return s
}

// GetUnderlineStyle returns the style's current underline style.
func (s Style) GetUnderlineStyle() UnderlineStyle {
	return s.ulStyle
}

// UnderlineColor returns a new style based on s, with the underline color
// set as requested. ColorDefault selects the foreground color.
func (s Style) UnderlineColor(c Color) Style {
	s.ulColor = c
	return s
}

// GetUnderlineColor returns the style's current underline color.
func (s Style) GetUnderlineColor() Color {
	return s.ulColor
}

func (s Style) setAttrs(attrs AttrMask, on bool) Style {
	if on {
		s.attrs |= attrs
	} else {
		s.attrs &^= attrs
	}
	return s
}

// Normal returns the style with all attributes disabled.
func (s Style) Normal() Style {
	s.attrs = AttrNone
	s.ulStyle = UnderlineStyleSolid
	s.ulColor = ColorDefault
	return s
}

// Bold returns a new style based on s, with the bold attribute set
// as requested.
func (s Style) Bold(on bool) Style {
	return s.setAttrs(AttrBold, on)
}

// Blink returns a new style based on s, with the blink attribute set
// as requested.
func (s Style) Blink(on bool) Style {
	return s.setAttrs(AttrBlink, on)
}

// Dim returns a new style based on s, with the dim attribute set
// as requested.
func (s Style) Dim(on bool) Style {
	return s.setAttrs(AttrDim, on)
}

// Italic returns a new style based on s, with the italic attribute set
// as requested.
func (s Style) Italic(on bool) Style {
	return s.setAttrs(AttrItalic, on)
}

// Reverse returns a new style based on s, with the reverse attribute set
// as requested.  (Reverse usually changes the foreground and background
// colors.)
func (s Style) Reverse(on bool) Style {
	return s.setAttrs(AttrReverse, on)
}

// Underline returns a new style based on s, with the underline attribute set
// as requested.
func (s Style) Underline(on bool) Style {
	return s.setAttrs(AttrUnderline, on)
}

// Strike sets strikethrough mode.
func (s Style) Strike(on bool) Style {
	return s.setAttrs(AttrStrike, on)
}

// Hidden returns a new style based on s, with the hidden attribute set as
// requested.
func (s Style) Hidden(on bool) Style {
	return s.setAttrs(AttrHidden, on)
}

// Inverse returns a new style based on s, with the inverse attribute set as
// requested.
func (s Style) Inverse(on bool) Style {
	return s.setAttrs(AttrInverse, on)
}

// Overline returns a new style based on s, with the overline attribute set
// as requested.
func (s Style) Overline(on bool) Style {
	return s.setAttrs(AttrOverline, on)
}

// Attributes returns a new style based on s, with its attributes set as
// specified.
func (s Style) Attributes(attrs AttrMask) Style {
	s.attrs = attrs
	return s
}
