// Copyright (c) 2022-2023  The Go-Curses Authors
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
	"sync"

	"github.com/go-curses/screencore/internal/math"
	"github.com/go-curses/screencore/log"
	"github.com/go-curses/screencore/paint"
	"github.com/go-curses/screencore/widthtable"
)

// BorderKind selects the glyph table drawBox uses for a rectangle's border.
type BorderKind int

const (
	BorderSingle BorderKind = iota
	BorderDouble
	BorderRounded
	BorderThick
)

func (b BorderKind) borderName() paint.BorderName {
	switch b {
	case BorderDouble:
		return paint.DoubleBorder
	case BorderRounded:
		return paint.RoundedBorder
	case BorderThick:
		return paint.ThickBorder
	default:
		return paint.StockBorder
	}
}

// BoxSpec describes the border type, style, and optional fill for drawBox.
type BoxSpec struct {
	Type  BorderKind
	Style paint.Style
	Fill  bool
}

// LineSpec describes the character and style drawLine uses.
type LineSpec struct {
	Char  rune
	Style paint.Style
}

// CellGrid is a dirty-tracked 2D array of Cells; the Compositor pairs two of
// them (displayed and scratch) for double buffering. Coordinates
// are 0-based; (0,0) is the top-left. All mutating methods tolerate
// out-of-bounds coordinates as a no-op, per the error taxonomy's
// OutOfBoundsInput handling.
type CellGrid struct {
	mu     sync.Mutex
	width  int
	height int
	cells  []Cell
}

// NewCellGrid allocates a CellGrid of the given size, filled with blank
// (space, width 1, default style) cells. Negative dimensions are clamped to
// zero; dimensions beyond maxGridDimension panic via IntegerOverflowError,
// matching the spec's "surfaced as a creation-time failure; never ignored"
// rule for IntegerOverflow.
func NewCellGrid(width, height int) *CellGrid {
	width = math.FloorI(width, 0)
	height = math.FloorI(height, 0)
	if width > maxGridDimension || height > maxGridDimension {
		panic(&IntegerOverflowError{Width: width, Height: height})
	}
	g := &CellGrid{width: width, height: height}
	g.cells = make([]Cell, width*height)
	g.fillAll(blankCell(paint.StyleDefault))
	return g
}

func (g *CellGrid) index(x, y int) int {
	return y*g.width + x
}

func (g *CellGrid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Size returns the grid's (width, height).
func (g *CellGrid) Size() (width, height int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.width, g.height
}

func (g *CellGrid) fillAll(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
		g.cells[i].dirty = true
	}
}

// SetCell writes a character at (x, y) with the given style, computing its
// display width via widthtable. Out-of-bounds coordinates are a no-op. A
// double-width character whose successor column exists gets a width-0
// continuation cell mirroring its style; at the last column, a double-width
// character is instead written as a single-width replacement ('?').
func (g *CellGrid) SetCell(x, y int, ch rune, style paint.Style) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setCellLocked(x, y, ch, style)
}

func (g *CellGrid) setCellLocked(x, y int, ch rune, style paint.Style) {
	if !g.inBounds(x, y) {
		log.TraceF("setCell out of bounds: x=%d y=%d (grid %dx%d)", x, y, g.width, g.height)
		return
	}
	w := widthtable.Width(ch)
	if w == 2 && x == g.width-1 {
		g.writeCellLocked(x, y, '?', 1, style)
		return
	}
	g.writeCellLocked(x, y, ch, w, style)
	if w == 2 {
		g.writeCellLocked(x+1, y, emptyRune, 0, style)
	}
}

func (g *CellGrid) writeCellLocked(x, y int, ch rune, width int, style paint.Style) {
	idx := g.index(x, y)
	next := Cell{Ch: ch, Width: width, Style: style}
	if !equalContent(g.cells[idx], next) {
		next.dirty = true
		g.cells[idx] = next
	}
}

// GetCell returns the cell at (x, y), without its internal dirty flag. Out
// of bounds returns the zero Cell.
func (g *CellGrid) GetCell(x, y int) Cell {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.inBounds(x, y) {
		return Cell{}
	}
	c := g.cells[g.index(x, y)]
	c.dirty = false
	return c
}

// WriteText writes text starting at (x, y), honoring '\n' (advance to the
// next row, reset to the original column) and '\t' (advance to the next
// column that is a multiple of 8). Writing stops once x reaches width or y
// reaches height. A wide character that would overflow the row is dropped
// entirely (neither cell is written).
func (g *CellGrid) WriteText(x, y int, text string, style paint.Style) {
	g.mu.Lock()
	defer g.mu.Unlock()
	startX := x
	cx, cy := x, y
	for _, r := range text {
		if cy >= g.height {
			return
		}
		switch r {
		case '\n':
			cy++
			cx = startX
			continue
		case '\t':
			next := ((cx / 8) + 1) * 8
			for cx < next && cx < g.width {
				g.writeCellLocked(cx, cy, ' ', 1, style)
				cx++
			}
			continue
		}
		if cx >= g.width {
			continue
		}
		w := widthtable.Width(r)
		if w == 2 && cx+1 >= g.width {
			// would overflow the row: drop entirely, neither cell written
			cx++
			continue
		}
		g.setCellLocked(cx, cy, r, style)
		if w == 2 {
			cx += 2
		} else {
			cx++
		}
	}
}

// WriteLine clears row y to style, then writes text starting at column 0.
func (g *CellGrid) WriteLine(y int, text string, style paint.Style) {
	g.ClearLine(y, style)
	g.WriteText(0, y, text, style)
}

// MeasureText simulates WriteText without mutating the grid, returning the
// bounding (width, height) the text would occupy starting at (0,0) on an
// unbounded grid. Empty text measures (0, 0); any non-empty text measures
// at least one row.
func MeasureText(text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	height = 1
	lineWidth := 0
	maxWidth := 0
	for _, r := range text {
		switch r {
		case '\n':
			height++
			if lineWidth > maxWidth {
				maxWidth = lineWidth
			}
			lineWidth = 0
			continue
		case '\t':
			lineWidth = ((lineWidth / 8) + 1) * 8
			continue
		}
		lineWidth += widthtable.Width(r)
	}
	if lineWidth > maxWidth {
		maxWidth = lineWidth
	}
	return maxWidth, height
}

// Clear sets every cell to a blank space of the given style.
func (g *CellGrid) Clear(style paint.Style) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.writeCellLocked(x, y, ' ', 1, style)
		}
	}
}

// ClearLine sets row y to blank spaces of the given style. Out of bounds is
// a no-op.
func (g *CellGrid) ClearLine(y int, style paint.Style) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if y < 0 || y >= g.height {
		return
	}
	for x := 0; x < g.width; x++ {
		g.writeCellLocked(x, y, ' ', 1, style)
	}
}

// ClearRect sets every cell within rect to blank spaces of the given style,
// clamped to the grid bounds.
func (g *CellGrid) ClearRect(rect Rect, style paint.Style) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fillRectLocked(rect, ' ', style)
}

// Fill sets every cell within rect to the given cell value, clamped to the
// grid bounds.
func (g *CellGrid) Fill(rect Rect, cell Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	x0, y0, x1, y1 := g.clampRect(rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			idx := g.index(x, y)
			if !equalContent(g.cells[idx], cell) {
				next := cell
				next.dirty = true
				g.cells[idx] = next
			}
		}
	}
}

// FillRect is the column/row/width/height form of Fill, bulk-filling with
// one character and style.
func (g *CellGrid) FillRect(x, y, w, h int, ch rune, style paint.Style) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fillRectLocked(Rect{X: x, Y: y, W: w, H: h}, ch, style)
}

func (g *CellGrid) fillRectLocked(rect Rect, ch rune, style paint.Style) {
	x0, y0, x1, y1 := g.clampRect(rect)
	width := widthtable.Width(ch)
	if width == 0 {
		width = 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; {
			if width == 2 && x+1 >= x1 {
				g.writeCellLocked(x, y, '?', 1, style)
				x++
				continue
			}
			g.writeCellLocked(x, y, ch, width, style)
			if width == 2 {
				g.writeCellLocked(x+1, y, emptyRune, 0, style)
				x += 2
			} else {
				x++
			}
		}
	}
}

func (g *CellGrid) clampRect(rect Rect) (x0, y0, x1, y1 int) {
	x0, y0 = math.FloorI(rect.X, 0), math.FloorI(rect.Y, 0)
	x1, y1 = rect.X+rect.W, rect.Y+rect.H
	if x1 > g.width {
		x1 = g.width
	}
	if y1 > g.height {
		y1 = g.height
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

// CopyFrom copies a w x h region of src starting at (srcX, srcY) into this
// grid starting at (dstX, dstY). If a wide-char pair would be split by the
// source region's right edge, the copied leading cell becomes width-1 with
// a replacement character, and no trailing continuation is written.
func (g *CellGrid) CopyFrom(src *CellGrid, srcX, srcY, dstX, dstY, w, h int) {
	src.mu.Lock()
	srcW, srcH := src.width, src.height
	srcCells := make([]Cell, len(src.cells))
	copy(srcCells, src.cells)
	src.mu.Unlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	for row := 0; row < h; row++ {
		sy := srcY + row
		dy := dstY + row
		if sy < 0 || sy >= srcH || dy < 0 || dy >= g.height {
			continue
		}
		for col := 0; col < w; col++ {
			sx := srcX + col
			dx := dstX + col
			if sx < 0 || sx >= srcW || dx < 0 || dx >= g.width {
				continue
			}
			c := srcCells[sy*srcW+sx]
			if c.Width == 2 && col == w-1 {
				g.writeCellLocked(dx, dy, '?', 1, c.Style)
				continue
			}
			if c.Width == 0 {
				// trailing half of a pair whose leading half fell outside
				// the copied region: treat as a space to avoid an orphan.
				g.writeCellLocked(dx, dy, ' ', 1, c.Style)
				continue
			}
			g.writeCellLocked(dx, dy, c.Ch, c.Width, c.Style)
		}
	}
}

// ScrollUp cyclically remaps rows upward by n, so row n becomes row 0; the
// bottom n rows become blank. If n >= height, behaves as Clear. All moved
// and cleared cells are marked dirty.
func (g *CellGrid) ScrollUp(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scrollLocked(n)
}

// ScrollDown cyclically remaps rows downward by n, so row 0 becomes row n;
// the top n rows become blank.
func (g *CellGrid) ScrollDown(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scrollLocked(-n)
}

func (g *CellGrid) scrollLocked(n int) {
	if n == 0 || g.height == 0 {
		return
	}
	if n >= g.height || -n >= g.height {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				g.writeCellLocked(x, y, ' ', 1, paint.StyleDefault)
			}
		}
		return
	}
	newCells := make([]Cell, len(g.cells))
	for y := 0; y < g.height; y++ {
		srcY := y + n
		if srcY >= 0 && srcY < g.height {
			copy(newCells[y*g.width:(y+1)*g.width], g.cells[srcY*g.width:(srcY+1)*g.width])
		} else {
			for x := 0; x < g.width; x++ {
				newCells[y*g.width+x] = blankCell(paint.StyleDefault)
			}
		}
	}
	for i := range newCells {
		newCells[i].dirty = true
	}
	g.cells = newCells
}

// DrawLine draws a straight or diagonal line from `from` to `to` using
// Bresenham's algorithm; every touched cell is written exactly once.
func (g *CellGrid) DrawLine(from, to [2]int, spec LineSpec) {
	g.mu.Lock()
	defer g.mu.Unlock()
	x0, y0 := from[0], from[1]
	x1, y1 := to[0], to[1]
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.setCellLocked(x0, y0, spec.Char, spec.Style)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawBox draws a border around rect using the glyph table for spec.Type;
// if spec.Fill, the interior is cleared to spaces in spec.Style.
func (g *CellGrid) DrawBox(rect Rect, spec BoxSpec) {
	runes, _ := paint.GetDefaultBorderRunes(spec.Type.borderName())

	g.mu.Lock()
	defer g.mu.Unlock()

	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	left, top := rect.X, rect.Y
	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1

	if spec.Fill && rect.W > 2 && rect.H > 2 {
		g.fillRectLocked(Rect{X: left + 1, Y: top + 1, W: rect.W - 2, H: rect.H - 2}, ' ', spec.Style)
	}

	edgeTop, edgeRight, edgeBottom, edgeLeft := runes.Edges()
	for x := left + 1; x < right; x++ {
		g.setCellLocked(x, top, edgeTop, spec.Style)
		g.setCellLocked(x, bottom, edgeBottom, spec.Style)
	}
	for y := top + 1; y < bottom; y++ {
		g.setCellLocked(left, y, edgeLeft, spec.Style)
		g.setCellLocked(right, y, edgeRight, spec.Style)
	}
	corners := runes.Corners()
	g.setCellLocked(left, top, corners[0], spec.Style)
	g.setCellLocked(right, top, corners[1], spec.Style)
	g.setCellLocked(left, bottom, corners[2], spec.Style)
	g.setCellLocked(right, bottom, corners[3], spec.Style)
}

// Clone returns a deep value copy of the grid, including dirty flags.
func (g *CellGrid) Clone() *CellGrid {
	g.mu.Lock()
	defer g.mu.Unlock()
	clone := &CellGrid{width: g.width, height: g.height}
	clone.cells = make([]Cell, len(g.cells))
	copy(clone.cells, g.cells)
	return clone
}

// ToArray returns a value snapshot of every cell, row-major, suitable for
// diffing. The dirty bit is excluded since content equality is what
// diffing cares about.
func (g *CellGrid) ToArray() []Cell {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		c.dirty = false
		out[i] = c
	}
	return out
}

// GetDirtyPatches scans each row for maximal runs of dirty cells and
// returns them as Patches.
func (g *CellGrid) GetDirtyPatches() []Patch {
	g.mu.Lock()
	defer g.mu.Unlock()
	var patches []Patch
	for y := 0; y < g.height; y++ {
		x := 0
		for x < g.width {
			if !g.cells[g.index(x, y)].dirty {
				x++
				continue
			}
			start := x
			var run []Cell
			for x < g.width && g.cells[g.index(x, y)].dirty {
				c := g.cells[g.index(x, y)]
				c.dirty = false
				run = append(run, c)
				x++
			}
			patches = append(patches, Patch{X: start, Y: y, Cells: run})
		}
	}
	return patches
}

// ClearDirty unsets every cell's dirty flag without altering content.
func (g *CellGrid) ClearDirty() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.cells {
		g.cells[i].dirty = false
	}
}
