// Copyright (c) 2022-2023  The Go-Curses Authors
// Copyright 2019 The TCell Authors
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

import "github.com/go-curses/screencore/paint"

// emptyRune is the sentinel character used by the trailing half of a wide
// character's cell pair.
const emptyRune = rune(0)

// Cell is one screen column on one row: a user-perceived character, its
// display width, its style, and whether it has changed since the last
// clearDirty.
type Cell struct {
	Ch    rune
	Width int
	Style paint.Style
	dirty bool
}

// Dirty reports whether the cell has changed since the last clearDirty.
func (c Cell) Dirty() bool {
	return c.dirty
}

// blank returns the default filler cell: one space, width 1, given style.
func blankCell(style paint.Style) Cell {
	return Cell{Ch: ' ', Width: 1, Style: style}
}

// continuationCell returns the trailing half of a wide character pair: an
// empty sentinel, width 0, carrying the leading cell's style.
func continuationCell(style paint.Style) Cell {
	return Cell{Ch: emptyRune, Width: 0, Style: style}
}

// equalContent reports whether two cells have the same displayed content:
// same character, width, and style. Dirty state is excluded.
func equalContent(a, b Cell) bool {
	return a.Ch == b.Ch && a.Width == b.Width && a.Style == b.Style
}
