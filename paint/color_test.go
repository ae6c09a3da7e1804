// Copyright (c) 2021-2023  The Go-Curses Authors
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
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestColorBasics(t *testing.T) {
	Convey("Color Basics", t, func() {
		blue := GetColor("blue")
		So(blue.String(), ShouldEqual, "blue[#0000ff]")
		unknown := GetColor("unknown")
		So(unknown.String(), ShouldEqual, "unnamed[-1]")
	})
}

func TestColorValues(t *testing.T) {
	var values = []struct {
		color Color
		hex   int32
	}{
		{ColorRed, 0x00FF0000},
		{ColorGreen, 0x00008000},
		{ColorLime, 0x0000FF00},
		{ColorBlue, 0x000000FF},
		{ColorBlack, 0x00000000},
		{ColorWhite, 0x00FFFFFF},
		{ColorSilver, 0x00C0C0C0},
	}

	Convey("Color Values", t, func() {
		for _, tc := range values {
			So(tc.color.Hex(), ShouldEqual, tc.hex)
		}
	})
}

func TestColorFitting(t *testing.T) {
	pal := []Color{
		ColorBlack, ColorMaroon, ColorGreen, ColorOlive,
		ColorNavy, ColorPurple, ColorTeal, ColorSilver,
	}

	Convey("Color Fitting", t, func() {
		for _, c := range pal {
			So(FindColor(c, pal), ShouldEqual, c)
		}
		// an RGB value near red fits to maroon, the only red in this palette
		So(FindColor(NewRGBColor(0xe0, 0x10, 0x10), pal), ShouldEqual, ColorMaroon)
		// a near-white RGB value should fit to silver
		So(FindColor(NewRGBColor(0xe8, 0xe8, 0xe8), pal), ShouldEqual, ColorSilver)
		// if value is NaN, safe_nan produces '+Inf'
		nd := safe_nan(math.Log(-1.0))
		So(nd, ShouldEqual, math.Inf(+1))
	})
}

func TestColorNameLookup(t *testing.T) {
	var values = []struct {
		name  string
		color Color
		rgb   bool
	}{
		{"#FF0000", ColorRed, true},
		{"black", ColorBlack, false},
		{"orange", ColorOrange, true},
		{"door", ColorDefault, false},
	}
	Convey("Color Name Lookups", t, func() {
		for _, v := range values {
			c := GetColor(v.name)
			So(c.Hex(), ShouldEqual, v.color.Hex())
			So(c.IsRGB(), ShouldEqual, v.rgb)
			if v.color != ColorDefault {
				So(c.TrueColor().Hex(), ShouldEqual, v.color.Hex())
			}
		}
	})
}

func TestColorRGB(t *testing.T) {
	Convey("Color RGB", t, func() {
		r, g, b := GetColor("#112233").RGB()
		So(r, ShouldEqual, 0x11)
		So(g, ShouldEqual, 0x22)
		So(b, ShouldEqual, 0x33)
		c := ColorDefault
		So(c.IsRGB(), ShouldEqual, false)
		r, g, b = c.RGB()
		So(r, ShouldEqual, -1)
		So(g, ShouldEqual, -1)
		So(b, ShouldEqual, -1)
		c = NewRGBColor(0x11, 0x22, 0x33)
		r, g, b = c.RGB()
		So(c.IsRGB(), ShouldEqual, true)
		So(r, ShouldEqual, 0x11)
		So(g, ShouldEqual, 0x22)
		So(b, ShouldEqual, 0x33)
	})
}
