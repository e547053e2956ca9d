// SPDX-License-Identifier: MIT

// Package ranges provides closed integer intervals and merging of
// overlapping intervals.
package ranges

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// ErrInverted indicates a range whose lower bound exceeds its upper bound.
var ErrInverted = errors.New("ranges: lower bound exceeds upper bound")

// Range is the closed interval [Lo, Hi]. A valid Range has Lo <= Hi.
type Range[T constraints.Integer] struct {
	Lo, Hi T
}

// New returns [lo, hi]. It panics with ErrInverted when lo > hi.
func New[T constraints.Integer](lo, hi T) Range[T] {
	if lo > hi {
		panic(fmt.Errorf("%w: %v > %v", ErrInverted, lo, hi))
	}

	return Range[T]{Lo: lo, Hi: hi}
}

// Contains reports whether v lies in r.
func (r Range[T]) Contains(v T) bool {
	return r.Lo <= v && v <= r.Hi
}

// Overlaps reports whether r and other share at least one value.
// [3, 5] and [6, 10] touch but do not overlap.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return r.Lo <= other.Hi && other.Lo <= r.Hi
}

// Len returns the number of integers in r.
func (r Range[T]) Len() T {
	return r.Hi - r.Lo + 1
}

// String returns "lo...hi".
func (r Range[T]) String() string {
	return fmt.Sprintf("%v...%v", r.Lo, r.Hi)
}

// Merged sorts rs by lower bound and folds overlapping ranges into single
// spans. Only genuine overlaps merge: [3, 5] and [6, 10] stay separate.
// The result is sorted and pairwise disjoint; rs is not modified.
// Complexity: O(n log n).
func Merged[T constraints.Integer](rs []Range[T]) []Range[T] {
	if len(rs) == 0 {
		return []Range[T]{}
	}
	sorted := slices.Clone(rs)
	slices.SortStableFunc(sorted, func(a, b Range[T]) int {
		return cmp.Compare(a.Lo, b.Lo)
	})

	result := make([]Range[T], 0, len(sorted))
	current := sorted[0]
	for _, r := range sorted[1:] {
		if current.Overlaps(r) {
			current.Hi = max(current.Hi, r.Hi)
			continue
		}
		result = append(result, current)
		current = r
	}

	return append(result, current)
}
