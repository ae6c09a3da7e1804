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

// Patch is a maximal run of differing cells on a single row, ready to be
// applied to a grid or emitted by the Writer Pipeline.
type Patch struct {
	X, Y  int
	Cells []Cell
}

// endColumn returns the column just past the patch's last cell, accounting
// for each cell's display width.
func (p Patch) endColumn() int {
	col := p.X
	for _, c := range p.Cells {
		col += c.Width
	}
	return col
}

func cellsEqual(a, b Cell) bool {
	return equalContent(a, b)
}
