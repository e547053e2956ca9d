// Package parsing turns puzzle input text into values: lines, numbers,
// digit grids, character grids and integer ranges.
//
// What:
//
//	A Parser[T] is a function that recognises a prefix of its input and
//	returns the value with the rest of the input. Small parsers (Literal,
//	Prefix, Digits, Int, End) combine through Map, TryMap, Pair, Many and
//	ManyUntilEnd into the ready-made parsers of this package:
//
//	  Lines, CharacterLines          whole text → []string, [][]rune
//	  NumberPair, NumberPairs        "1,2"      → [2]int
//	  NumberLine, NumberLines        "1,2,3"    → []int
//	  SingleDigitLine(s)             "123"      → []int{1, 2, 3}
//	  SingleDigitGrid, CharacterGrid block      → *grid.Grid
//	  Range, Ranges                  "3-5"      → ranges.Range[int]
//
// Whole input:
//
//	Parser.Parse requires the parser to consume everything. The
//	multi-line parsers (the plural names, the grids, Lines and
//	CharacterLines) accept a single trailing newline, since puzzle inputs
//	usually end with one.
//
// Errors:
//
//	Every failure is an *Error carrying the byte offset reached and what
//	was expected. Match ErrUnexpectedInput or ErrTrailingInput with
//	errors.Is; a rejected grid also matches grid.ErrNonRectangular or
//	grid.ErrEmptyGrid. Must turns an error into a panic for inputs known
//	to be well formed.
//
// Complexity: every parser here is linear in the length of its input.
package parsing
