// SPDX-License-Identifier: MIT

package parsing

import "github.com/katalvlaran/puzzlekit/grid"

// SingleDigitGrid matches a rectangular block of digits:
//
//	123
//	456   → 3×2 grid with rows [1 2 3] and [4 5 6]
func SingleDigitGrid() Parser[*grid.Grid[int]] {
	return TryMap(SingleDigitLines(), grid.New[int])
}

// CharacterGrid matches a rectangular block of characters, one cell per rune.
func CharacterGrid() Parser[*grid.Grid[rune]] {
	return TryMap(CharacterLinesParser(), grid.New[rune])
}
