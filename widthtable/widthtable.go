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

// Package widthtable classifies a rune into the number of terminal columns
// (0, 1, or 2) it occupies, per the documented control/combining/CJK ranges,
// falling back to github.com/mattn/go-runewidth for anything not covered by
// an explicit range below.
package widthtable

import "github.com/mattn/go-runewidth"

type runeRange struct {
	lo, hi rune
}

func inRanges(r rune, ranges []runeRange) bool {
	for _, rg := range ranges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// zeroWidthRanges are control characters, combining marks, variation
// selectors, zero-width joiners/non-joiners, and the byte-order mark.
var zeroWidthRanges = []runeRange{
	{0x0000, 0x001F}, // C0 control characters
	{0x007F, 0x009F}, // DEL and C1 control characters
	{0x0300, 0x036F}, // combining diacritical marks
	{0x1AB0, 0x1AFF}, // combining diacritical marks extended
	{0x1DC0, 0x1DFF}, // combining diacritical marks supplement
	{0x200B, 0x200D}, // zero width space/non-joiner/joiner
	{0x20D0, 0x20FF}, // combining diacritical marks for symbols
	{0xFE00, 0xFE0F}, // variation selectors
	{0xFE20, 0xFE2F}, // combining half marks
	{0xFEFF, 0xFEFF}, // byte order mark
}

// wideRanges are CJK ideographs, Hangul Jamo, fullwidth forms, and the
// documented emoji range.
var wideRanges = []runeRange{
	{0x1100, 0x115F}, // Hangul Jamo
	{0x2E80, 0x9FFF}, // CJK radicals through CJK unified ideographs
	{0x3000, 0x303F}, // CJK symbols and punctuation
	{0xAC00, 0xD7AF}, // Hangul syllables
	{0xF900, 0xFAFF}, // CJK compatibility ideographs
	{0xFE30, 0xFE4F}, // CJK compatibility forms
	{0xFF00, 0xFF60}, // fullwidth forms
	{0xFFE0, 0xFFE6}, // fullwidth signs
	{0x1F300, 0x1FAF8}, // emoji and pictographs
}

// Width classifies r into 0, 1, or 2 terminal columns.
func Width(r rune) int {
	if inRanges(r, zeroWidthRanges) {
		return 0
	}
	if inRanges(r, wideRanges) {
		return 2
	}
	switch w := runewidth.RuneWidth(r); w {
	case 0, 1, 2:
		return w
	default:
		return 1
	}
}

// StringWidth returns the sum of Width over every rune in s.
func StringWidth(s string) int {
	total := 0
	for _, r := range s {
		total += Width(r)
	}
	return total
}
