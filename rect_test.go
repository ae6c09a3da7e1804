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

package screencore

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRectBasics(t *testing.T) {
	Convey("Rect edges and Contains", t, func() {
		r := NewRect(2, 3, 4, 5)
		So(r.Left(), ShouldEqual, 2)
		So(r.Top(), ShouldEqual, 3)
		So(r.Right(), ShouldEqual, 6)
		So(r.Bottom(), ShouldEqual, 8)
		So(r.Contains(2, 3), ShouldBeTrue)
		So(r.Contains(5, 7), ShouldBeTrue)
		So(r.Contains(6, 8), ShouldBeFalse)
		So(r.Empty(), ShouldBeFalse)
		So(Rect{}.Empty(), ShouldBeTrue)
	})

	Convey("Intersects uses half-open edges", t, func() {
		a := NewRect(0, 0, 5, 5)
		b := NewRect(5, 5, 5, 5)
		So(a.Intersects(b), ShouldBeFalse)

		c := NewRect(4, 4, 5, 5)
		So(a.Intersects(c), ShouldBeTrue)
	})

	Convey("Intersect and Union", t, func() {
		a := NewRect(0, 0, 10, 10)
		b := NewRect(5, 5, 10, 10)
		So(a.Intersect(b), ShouldResemble, NewRect(5, 5, 5, 5))
		So(a.Union(b), ShouldResemble, NewRect(0, 0, 15, 15))

		d := NewRect(100, 100, 1, 1)
		So(a.Intersect(d), ShouldResemble, Rect{})
	})
}

func TestMergeRects(t *testing.T) {
	Convey("mergeRects unions overlapping rectangles", t, func() {
		rs := []Rect{
			NewRect(0, 0, 5, 5),
			NewRect(3, 3, 5, 5),
			NewRect(100, 100, 2, 2),
		}
		merged := mergeRects(rs)
		So(len(merged), ShouldEqual, 2)

		var total Rect
		var count int
		for _, r := range merged {
			if r.Equals(NewRect(0, 0, 8, 8)) {
				count++
			}
			total = total.Union(r)
		}
		So(count, ShouldEqual, 1)
		So(total, ShouldResemble, NewRect(0, 0, 102, 102))
	})

	Convey("mergeRects is order independent on membership", t, func() {
		a := mergeRects([]Rect{NewRect(0, 0, 2, 2), NewRect(1, 1, 2, 2)})
		b := mergeRects([]Rect{NewRect(1, 1, 2, 2), NewRect(0, 0, 2, 2)})
		So(len(a), ShouldEqual, 1)
		So(len(b), ShouldEqual, 1)
		So(a[0], ShouldResemble, b[0])
	})
}
