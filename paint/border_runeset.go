package paint

import (
	"fmt"
)

type BorderRuneSet struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Corners returns the four corner glyphs in top-left, top-right,
// bottom-left, bottom-right order, the order drawBox fills them in.
func (b BorderRuneSet) Corners() [4]rune {
	return [4]rune{b.TopLeft, b.TopRight, b.BottomLeft, b.BottomRight}
}

// Edges returns the four edge-run glyphs in top, right, bottom, left order.
func (b BorderRuneSet) Edges() (top, right, bottom, left rune) {
	return b.Top, b.Right, b.Bottom, b.Left
}

func (b BorderRuneSet) String() string {
	return fmt.Sprintf(
		"{BorderRunes=%v,%v,%v,%v,%v,%v,%v,%v}",
		b.TopRight,
		b.Top,
		b.TopLeft,
		b.Left,
		b.BottomLeft,
		b.Bottom,
		b.BottomRight,
		b.Right,
	)
}