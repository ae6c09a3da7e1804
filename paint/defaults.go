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

package paint

import "sync"

var pkgLock = &sync.RWMutex{}

const (
	DefaultFillRune = ' '
	DefaultNilRune  = rune(0)
)

var (
	DefaultMonoStyle  = StyleDefault.Foreground(ColorWhite).Background(ColorBlack).Dim(false)
	DefaultColorStyle = StyleDefault.Foreground(ColorWhite).Background(ColorBlack).Dim(false)
)

var (
	stockBorderRune = BorderRuneSet{
		TopLeft:     RuneULCorner,
		Top:         RuneHLine,
		TopRight:    RuneURCorner,
		Left:        RuneVLine,
		Right:       RuneVLine,
		BottomLeft:  RuneLLCorner,
		Bottom:      RuneHLine,
		BottomRight: RuneLRCorner,
	}
	roundedBorderRune = BorderRuneSet{
		TopLeft:     RuneULCornerRounded,
		Top:         RuneHLine,
		TopRight:    RuneURCornerRounded,
		Left:        RuneVLine,
		Right:       RuneVLine,
		BottomLeft:  RuneLLCornerRounded,
		Bottom:      RuneHLine,
		BottomRight: RuneLRCornerRounded,
	}
	doubleBorderRune = BorderRuneSet{
		TopLeft:     RuneBoxDrawingsDoubleDownAndRight,
		Top:         RuneBoxDrawingsDoubleHorizontal,
		TopRight:    RuneBoxDrawingsDoubleDownAndLeft,
		Left:        RuneBoxDrawingsDoubleVertical,
		Right:       RuneBoxDrawingsDoubleVertical,
		BottomLeft:  RuneBoxDrawingsDoubleUpAndRight,
		Bottom:      RuneBoxDrawingsDoubleHorizontal,
		BottomRight: RuneBoxDrawingsDoubleUpAndLeft,
	}
	thickBorderRune = BorderRuneSet{
		TopLeft:     RuneBoxDrawingsHeavyDownAndRight,
		Top:         RuneBoxDrawingsHeavyHorizontal,
		TopRight:    RuneBoxDrawingsHeavyDownAndLeft,
		Left:        RuneBoxDrawingsHeavyVertical,
		Right:       RuneBoxDrawingsHeavyVertical,
		BottomLeft:  RuneBoxDrawingsHeavyUpAndRight,
		Bottom:      RuneBoxDrawingsHeavyHorizontal,
		BottomRight: RuneBoxDrawingsHeavyUpAndLeft,
	}
	emptyBorderRune = BorderRuneSet{
		TopLeft:     ' ',
		Top:         ' ',
		TopRight:    ' ',
		Left:        ' ',
		Right:       ' ',
		BottomLeft:  ' ',
		Bottom:      ' ',
		BottomRight: ' ',
	}
	nilBorderRune = BorderRuneSet{
		TopLeft:     DefaultNilRune,
		Top:         DefaultNilRune,
		TopRight:    DefaultNilRune,
		Left:        DefaultNilRune,
		Right:       DefaultNilRune,
		BottomLeft:  DefaultNilRune,
		Bottom:      DefaultNilRune,
		BottomRight: DefaultNilRune,
	}
)
