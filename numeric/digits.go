// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/stack"
	"golang.org/x/exp/constraints"
)

// ErrTooManyDigits indicates BubbleDigits was asked for more digits than it was given.
var ErrTooManyDigits = errors.New("numeric: digit count out of range")

// ToInt folds decimal digits left to right: [1, 2, 3] → 123.
// An empty slice yields 0.
func ToInt[T constraints.Integer](digits []T) T {
	var result T
	for _, d := range digits {
		result = result*10 + d
	}

	return result
}

// BubbleDigits picks length digits from numbers, keeping their relative order,
// so that the picked sequence is lexicographically largest:
//
//	BubbleDigits([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1, 1, 1, 1, 1}, 2)  // [9 8]
//	BubbleDigits([]int{8, 1, 8, 1, 8, 1, 9, 1, 1, 1, 1, 2, 1, 1, 1}, 12) // [8 8 8 9 1 1 1 1 2 1 1 1]
//
// A monotonic stack drops at most len(numbers)-length digits: while drops
// remain and the top is strictly smaller than the incoming digit, the top is
// popped. The stack is then truncated to length.
//
// It panics with ErrTooManyDigits if length > len(numbers), and for a negative length.
// Complexity: O(len(numbers)).
func BubbleDigits(numbers []int, length int) []int {
	drops := len(numbers) - length
	if drops < 0 || length < 0 {
		panic(fmt.Errorf("%w: length %d, have %d", ErrTooManyDigits, length, len(numbers)))
	}

	st := stack.New[int]()
	for _, d := range numbers {
		for drops > 0 && st.Size() > 0 && st.Peek() < d {
			st.Pop()
			drops--
		}
		st.Push(d)
	}

	// the stack yields top first; lay it out bottom first
	kept := make([]int, st.Size())
	for i := len(kept) - 1; i >= 0; i-- {
		kept[i] = st.Pop()
	}

	return kept[:length]
}
