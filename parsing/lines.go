// SPDX-License-Identifier: MIT

package parsing

import (
	"errors"
	"strings"
)

// line consumes everything up to, not including, the next newline.
var line = Prefix(func(r rune) bool { return r != '\n' })

// wholeInput runs p over all of in, ignoring one final newline.
func wholeInput[T any](p Parser[T]) Parser[T] {
	return func(in string) (T, string, error) {
		var zero T
		body := strings.TrimSuffix(in, "\n")
		tail := in[len(body):]
		v, rest, err := p(body)
		if err == nil && rest != "" {
			err = fail(rest, "end of input")
		}
		if err != nil {
			var pe *Error
			if errors.As(err, &pe) {
				pe.rest += tail
			}
			return zero, in, err
		}

		return v, "", nil
	}
}

// LinesParser splits the whole input on newlines.
func LinesParser() Parser[[]string] {
	return wholeInput(ManyUntilEnd(line, "\n"))
}

// CharacterLinesParser splits the whole input on newlines and each line
// into its runes.
func CharacterLinesParser() Parser[[][]rune] {
	return wholeInput(ManyUntilEnd(Map(line, toRunes), "\n"))
}

func toRunes(s string) []rune { return []rune(s) }

// Lines returns the newline-separated lines of s:
//
//	Lines("abcd123--\nwxyz") // ["abcd123--" "wxyz"]
//
// Empty lines are kept. The empty string is a single empty line.
func Lines(s string) ([]string, error) {
	return LinesParser().Parse(s)
}

// CharacterLines returns the lines of s as rune slices:
//
//	CharacterLines("AB\nCD") // [['A' 'B'] ['C' 'D']]
func CharacterLines(s string) ([][]rune, error) {
	return CharacterLinesParser().Parse(s)
}
