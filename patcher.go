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

import "sort"

// ApplyPatch writes p.Cells into g starting at (p.X, p.Y), advancing the
// column by each cell's display width. Patches whose coordinates fall
// outside g are dropped and reported via BufferDimensionMismatchError
// rather than applied partially mid-row.
func ApplyPatch(g *CellGrid, p Patch) error {
	w, h := g.Size()
	if p.Y < 0 || p.Y >= h || p.X < 0 || p.endColumn() > w {
		return &BufferDimensionMismatchError{Patch: p, Width: w, Height: h}
	}
	x := p.X
	for _, c := range p.Cells {
		if c.Width == 0 {
			// the preceding wide cell already advanced past this column
			continue
		}
		g.SetCell(x, p.Y, c.Ch, c.Style)
		x += c.Width
	}
	return nil
}

// ApplyPatches applies each patch to g in order; a patch that fails
// dimension validation is skipped (its error reported to the caller is the
// first one encountered) and the remaining patches are still applied.
func ApplyPatches(g *CellGrid, patches []Patch) error {
	var firstErr error
	for _, p := range patches {
		if err := ApplyPatch(g, p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OptimizePatches sorts patches by (Y, X) and merges adjacent patches on
// the same row where the predecessor's end column equals the successor's
// start column. The result is stable under re-optimization.
func OptimizePatches(patches []Patch) []Patch {
	if len(patches) == 0 {
		return nil
	}
	sorted := make([]Patch, len(patches))
	copy(sorted, patches)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	out := []Patch{sorted[0]}
	for _, p := range sorted[1:] {
		last := &out[len(out)-1]
		if p.Y == last.Y && p.X == last.endColumn() {
			last.Cells = append(last.Cells, p.Cells...)
			continue
		}
		out = append(out, p)
	}
	return out
}
