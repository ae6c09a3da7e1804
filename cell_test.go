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

	"github.com/go-curses/screencore/paint"
)

func TestCellBasics(t *testing.T) {
	Convey("Cell basics", t, func() {
		blank := blankCell(paint.StyleDefault)
		So(blank.Ch, ShouldEqual, ' ')
		So(blank.Width, ShouldEqual, 1)
		So(blank.Dirty(), ShouldEqual, false)

		cont := continuationCell(paint.StyleDefault.Bold(true))
		So(cont.Ch, ShouldEqual, emptyRune)
		So(cont.Width, ShouldEqual, 0)
		So(cont.Style, ShouldEqual, paint.StyleDefault.Bold(true))
	})

	Convey("equalContent ignores dirty", t, func() {
		a := Cell{Ch: 'x', Width: 1, Style: paint.StyleDefault, dirty: true}
		b := Cell{Ch: 'x', Width: 1, Style: paint.StyleDefault, dirty: false}
		So(equalContent(a, b), ShouldBeTrue)

		c := Cell{Ch: 'y', Width: 1, Style: paint.StyleDefault}
		So(equalContent(a, c), ShouldBeFalse)
	})
}
