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

package screencore

// Diff compares two grids row by row and returns the patches describing how
// to turn a into b. Only rows up to min(a.height, b.height) are considered;
// a cell differs when its (Ch, Width, Style) triple differs.
func Diff(a, b *CellGrid) []Patch {
	aCells := a.ToArray()
	bCells := b.ToArray()
	aw, ah := a.width, a.height
	bw, bh := b.width, b.height

	rows := ah
	if bh < rows {
		rows = bh
	}
	cols := aw
	if bw < cols {
		cols = bw
	}

	var patches []Patch
	for y := 0; y < rows; y++ {
		x := 0
		for x < cols {
			ai := y*aw + x
			bi := y*bw + x
			if cellsEqual(aCells[ai], bCells[bi]) {
				x++
				continue
			}
			start := x
			var run []Cell
			for x < cols {
				ai = y*aw + x
				bi = y*bw + x
				if cellsEqual(aCells[ai], bCells[bi]) {
					break
				}
				c := bCells[bi]
				c.dirty = false
				run = append(run, c)
				x++
			}
			patches = append(patches, Patch{X: start, Y: y, Cells: run})
		}
	}
	return patches
}
