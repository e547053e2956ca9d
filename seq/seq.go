// SPDX-License-Identifier: MIT

package seq

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOptionViolation is raised when an invalid Option is supplied.
var ErrOptionViolation = errors.New("seq: invalid option supplied")

// Option configures IterateUntilStable.
type Option func(*Options)

// Options holds the parameters of a fixed-point run.
type Options struct {
	// MaxIterations, if > 0, bounds the number of step calls.
	// A value of 0 explicitly disables the bound.
	MaxIterations int
}

// DefaultOptions returns Options with no iteration cap.
func DefaultOptions() Options {
	return Options{MaxIterations: 0}
}

// WithMaxIterations bounds the number of step calls.
//
//	n > 0: at most n calls, so at most n+1 states
//	n == 0: explicit no limit
//	n < 0: panics with ErrOptionViolation
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n))
	}

	return func(o *Options) {
		o.MaxIterations = n
	}
}

// Iterate yields start followed by successive applications of step.
// The sequence is unbounded; stop ranging to end it.
func Iterate[T any](start T, step func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := start; ; cur = step(cur) {
			if !yield(cur) {
				return
			}
		}
	}
}

// Take yields at most n values of s.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range s {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// TakeWhile yields values of s until pred first reports false.
func TakeWhile[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// Collect drains s into a slice. s must be finite.
func Collect[T any](s iter.Seq[T]) []T {
	out := []T{}
	for v := range s {
		out = append(out, v)
	}

	return out
}

// IterateUntilStable applies step from start until a state equals its
// successor, and returns start plus every state up to and including that
// stable one. With WithMaxIterations the run also stops after n steps and
// the last state reached is the final element.
//
//	IterateUntilStable(0, func(x int) int { return min(x+1, 3) }) // [0 1 2 3]
//	IterateUntilStable(42, func(x int) int { return x })           // [42]
func IterateUntilStable[T comparable](start T, step func(T) T, opts ...Option) []T {
	return IterateUntilStableFunc(start, step, func(a, b T) bool { return a == b }, opts...)
}

// IterateUntilStableFunc is IterateUntilStable with a caller-supplied
// equality, for states that are not comparable (slices, grids, maps).
func IterateUntilStableFunc[T any](start T, step func(T) T, equal func(a, b T) bool, opts ...Option) []T {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	states := []T{start}
	cur := start
	for steps := 0; o.MaxIterations == 0 || steps < o.MaxIterations; steps++ {
		next := step(cur)
		if equal(cur, next) {
			break
		}
		states = append(states, next)
		cur = next
	}

	return states
}
