// Copyright (c) 2023  The Go-Curses Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package widthtable

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWidth(t *testing.T) {
	Convey("control characters are zero width", t, func() {
		So(Width(0x00), ShouldEqual, 0)
		So(Width(0x1F), ShouldEqual, 0)
		So(Width(0x7F), ShouldEqual, 0)
		So(Width(0x9F), ShouldEqual, 0)
	})
	Convey("combining marks and variation selectors are zero width", t, func() {
		So(Width(0x0301), ShouldEqual, 0)
		So(Width(0x1AB0), ShouldEqual, 0)
		So(Width(0x1DC0), ShouldEqual, 0)
		So(Width(0x20D0), ShouldEqual, 0)
		So(Width(0xFE00), ShouldEqual, 0)
		So(Width(0xFE20), ShouldEqual, 0)
		So(Width(0xFEFF), ShouldEqual, 0)
	})
	Convey("CJK, Hangul, fullwidth, and emoji ranges are double width", t, func() {
		So(Width(0x4E2D), ShouldEqual, 2)  // 中
		So(Width(0x1100), ShouldEqual, 2)  // Hangul Jamo
		So(Width(0xAC00), ShouldEqual, 2)  // Hangul syllable
		So(Width(0xFF21), ShouldEqual, 2)  // fullwidth A
		So(Width(0x1F600), ShouldEqual, 2) // emoji
	})
	Convey("plain ASCII letters are single width", t, func() {
		So(Width('a'), ShouldEqual, 1)
		So(Width('Z'), ShouldEqual, 1)
		So(Width(' '), ShouldEqual, 1)
	})
	Convey("StringWidth sums per-rune widths", t, func() {
		So(StringWidth("hi"), ShouldEqual, 2)
		So(StringWidth("世界"), ShouldEqual, 4)
		So(StringWidth(""), ShouldEqual, 0)
	})
}
