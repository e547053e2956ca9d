// SPDX-License-Identifier: MIT

package parsing

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/ranges"
)

// NumberPair matches two unsigned integers around sep: "1,2" → [1 2].
func NumberPair(sep string) Parser[[2]int] {
	return Map(Pair(Digits(0), sep, Digits(0)), func(t Tuple[int, int]) [2]int {
		return [2]int{t.First, t.Second}
	})
}

// NumberPairs matches one NumberPair per line over the whole input.
func NumberPairs(sep string) Parser[[][2]int] {
	return wholeInput(ManyUntilEnd(NumberPair(sep), "\n"))
}

// NumberLine matches signed integers separated by sep: "1,-2,3" → [1 -2 3].
// An empty line yields an empty slice.
func NumberLine(sep string) Parser[[]int] {
	return Many(Int(), sep)
}

// NumberLines matches one NumberLine per line over the whole input.
func NumberLines(sep string) Parser[[][]int] {
	return wholeInput(ManyUntilEnd(NumberLine(sep), "\n"))
}

// SingleDigitLine matches a run of digits, one value per digit: "123" → [1 2 3].
func SingleDigitLine() Parser[[]int] {
	return Many(Digits(1), "")
}

// SingleDigitLines matches one SingleDigitLine per line over the whole input.
func SingleDigitLines() Parser[[][]int] {
	return wholeInput(ManyUntilEnd(SingleDigitLine(), "\n"))
}

// Range matches "lo<sep>hi" as a closed range. Both bounds may be signed.
// lo > hi is rejected with an error matching ranges.ErrInverted.
func Range(sep string) Parser[ranges.Range[int]] {
	return TryMap(Pair(Int(), sep, Int()), func(t Tuple[int, int]) (ranges.Range[int], error) {
		if t.First > t.Second {
			return ranges.Range[int]{}, fmt.Errorf("%w: %d > %d", ranges.ErrInverted, t.First, t.Second)
		}

		return ranges.New(t.First, t.Second), nil
	})
}

// Ranges matches one Range per line over the whole input.
func Ranges(sep string) Parser[[]ranges.Range[int]] {
	return wholeInput(ManyUntilEnd(Range(sep), "\n"))
}
