// SPDX-License-Identifier: MIT

package parsing

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parser recognises a prefix of in, returning the parsed value and the
// input that follows it. On failure the returned error is an *Error and
// the remaining input is unspecified.
type Parser[T any] func(in string) (T, string, error)

// Tuple holds the two values recognised by Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Parse runs p over the whole of input. Unconsumed input is an error
// matching ErrTrailingInput; every failure carries its byte offset.
func (p Parser[T]) Parse(input string) (T, error) {
	v, rest, err := p(input)
	if err != nil {
		var zero T
		return zero, locate(input, err)
	}
	if rest != "" {
		var zero T
		return zero, locate(input, &Error{Want: "end of input", kind: ErrTrailingInput, rest: rest})
	}

	return v, nil
}

// Must returns v, or panics with err. It is the unrecoverable form of any
// parse for inputs known to be well formed:
//
//	lines := parsing.Must(parsing.Lines(input))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

//----------------------------------------------------------------------------//
// Primitives
//----------------------------------------------------------------------------//

// Literal matches s exactly and returns it.
func Literal(s string) Parser[string] {
	return func(in string) (string, string, error) {
		if !strings.HasPrefix(in, s) {
			return "", in, fail(in, strconv.Quote(s))
		}

		return s, in[len(s):], nil
	}
}

// Prefix consumes the longest run of runes satisfying pred, possibly empty.
// It never fails.
func Prefix(pred func(rune) bool) Parser[string] {
	return func(in string) (string, string, error) {
		i := 0
		for i < len(in) {
			r, size := utf8.DecodeRuneInString(in[i:])
			if !pred(r) {
				break
			}
			i += size
		}

		return in[:i], in[i:], nil
	}
}

// digitRun returns the length of the leading run of ASCII digits in s.
func digitRun(s string) int {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}

	return i
}

// Digits matches unsigned decimal digits and returns their value.
// n == 0 matches one or more digits; n > 0 matches exactly n.
func Digits(n int) Parser[int] {
	want := "digits"
	if n > 0 {
		want = fmt.Sprintf("%d digit(s)", n)
	}

	return func(in string) (int, string, error) {
		end := digitRun(in)
		if n > 0 {
			if end < n {
				return 0, in, fail(in, want)
			}
			end = n
		}
		if end == 0 {
			return 0, in, fail(in, want)
		}
		v, err := strconv.Atoi(in[:end])
		if err != nil {
			e := fail(in, want)
			e.cause = err
			return 0, in, e
		}

		return v, in[end:], nil
	}
}

// Int matches an optionally signed decimal integer: "42", "-7", "+3".
func Int() Parser[int] {
	return func(in string) (int, string, error) {
		start := 0
		if strings.HasPrefix(in, "-") || strings.HasPrefix(in, "+") {
			start = 1
		}
		end := start + digitRun(in[start:])
		if end == start {
			return 0, in, fail(in, "integer")
		}
		v, err := strconv.Atoi(in[:end])
		if err != nil {
			e := fail(in, "integer")
			e.cause = err
			return 0, in, e
		}

		return v, in[end:], nil
	}
}

// End succeeds only when no input remains.
func End() Parser[struct{}] {
	return func(in string) (struct{}, string, error) {
		if in != "" {
			return struct{}{}, in, fail(in, "end of input")
		}

		return struct{}{}, in, nil
	}
}

//----------------------------------------------------------------------------//
// Combinators
//----------------------------------------------------------------------------//

// Map transforms the value produced by p.
func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return func(in string) (U, string, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero U
			return zero, in, err
		}

		return fn(v), rest, nil
	}
}

// TryMap transforms the value produced by p with a conversion that may
// fail. A conversion error is reported at the start of p's match and is
// reachable with errors.Is.
func TryMap[T, U any](p Parser[T], fn func(T) (U, error)) Parser[U] {
	return func(in string) (U, string, error) {
		var zero U
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		u, err := fn(v)
		if err != nil {
			e := fail(in, "convertible value")
			e.cause = err
			return zero, in, e
		}

		return u, rest, nil
	}
}

// Pair matches a, the literal sep, then b.
func Pair[A, B any](a Parser[A], sep string, b Parser[B]) Parser[Tuple[A, B]] {
	return func(in string) (Tuple[A, B], string, error) {
		var zero Tuple[A, B]
		first, rest, err := a(in)
		if err != nil {
			return zero, in, err
		}
		if !strings.HasPrefix(rest, sep) {
			return zero, in, fail(rest, strconv.Quote(sep))
		}
		second, rest, err := b(rest[len(sep):])
		if err != nil {
			return zero, in, err
		}

		return Tuple[A, B]{First: first, Second: second}, rest, nil
	}
}

// many matches zero or more p separated by sep and also returns the error
// that stopped it, if any. A separator not followed by a match is left
// unconsumed.
func many[T any](p Parser[T], sep string, in string) ([]T, string, error) {
	out := []T{}
	rest := in
	for {
		next := rest
		if len(out) > 0 {
			if !strings.HasPrefix(next, sep) {
				return out, rest, nil
			}
			next = next[len(sep):]
		}
		v, after, err := p(next)
		if err != nil {
			return out, rest, err
		}
		out = append(out, v)
		stalled := len(after) == len(rest)
		rest = after
		// without a separator an empty match would repeat forever
		if sep == "" && (stalled || rest == "") {
			return out, rest, nil
		}
	}
}

// Many matches zero or more p separated by sep ("" for none). It stops at
// the first element that fails to match and never fails itself.
func Many[T any](p Parser[T], sep string) Parser[[]T] {
	return func(in string) ([]T, string, error) {
		out, rest, _ := many(p, sep, in)
		return out, rest, nil
	}
}

// ManyUntilEnd is Many followed by End. When input remains, the error is
// the one that stopped the element loop, which points at the bad element
// rather than at the end of the last good one.
func ManyUntilEnd[T any](p Parser[T], sep string) Parser[[]T] {
	return func(in string) ([]T, string, error) {
		out, rest, err := many(p, sep, in)
		if rest == "" {
			return out, rest, nil
		}
		if err == nil {
			return nil, in, fail(rest, "end of input")
		}

		return nil, in, err
	}
}
