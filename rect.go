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

import "fmt"

// Rect is an axis-aligned rectangle with an inclusive-low, exclusive-high
// convention: it covers columns [X, X+W) and rows [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// NewRect returns a Rect at (x, y) with the given width and height.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%d,y:%d,w:%d,h:%d}", r.X, r.Y, r.W, r.H)
}

// Empty reports whether the rectangle covers zero area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Left, Top, Right and Bottom return the rectangle's edges, with Right and
// Bottom exclusive.
func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) falls within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and o overlap, using half-open edges: a
// Drawable at bounds r is visible against viewport o when
// r.Right() > o.Left() && o.Right() > r.Left() && r.Bottom() > o.Top() &&
// o.Bottom() > r.Top().
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Right() > o.Left() && o.Right() > r.Left() &&
		r.Bottom() > o.Top() && o.Bottom() > r.Top()
}

// Intersect returns the overlapping region of r and o. The result is empty
// (W=0, H=0) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	if !r.Intersects(o) {
		return Rect{}
	}
	x1 := max(r.Left(), o.Left())
	y1 := max(r.Top(), o.Top())
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Union returns the smallest rectangle containing both r and o. An empty
// operand is ignored; Union of two empty rectangles is empty.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x1 := min(r.Left(), o.Left())
	y1 := min(r.Top(), o.Top())
	x2 := max(r.Right(), o.Right())
	y2 := max(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Equals reports field-wise equality.
func (r Rect) Equals(o Rect) bool {
	return r.X == o.X && r.Y == o.Y && r.W == o.W && r.H == o.H
}

// mergeRects computes the union of any mutually overlapping rectangles in
// rs, iterating until no further merges occur within a group. Order of the
// result is not significant; only set membership is guaranteed stable.
func mergeRects(rs []Rect) []Rect {
	pending := append([]Rect{}, rs...)
	var out []Rect
	consumed := make([]bool, len(pending))
	for i := range pending {
		if consumed[i] {
			continue
		}
		acc := pending[i]
		consumed[i] = true
		mergedAny := true
		for mergedAny {
			mergedAny = false
			for j := range pending {
				if consumed[j] {
					continue
				}
				if acc.Intersects(pending[j]) || touches(acc, pending[j]) {
					acc = acc.Union(pending[j])
					consumed[j] = true
					mergedAny = true
				}
			}
		}
		out = append(out, acc)
	}
	return out
}

// touches reports whether two rectangles share an overlapping region once
// the half-open edge test in Intersects is relaxed to include
// edge-adjacency; used only by mergeRects so zero-gap neighbors coalesce.
func touches(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.Right() >= b.Left() && b.Right() >= a.Left() &&
		a.Bottom() >= b.Top() && b.Bottom() >= a.Top()
}
