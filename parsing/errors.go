// SPDX-License-Identifier: MIT

package parsing

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedInput is matched by every failure of a parser to recognise
	// its input.
	ErrUnexpectedInput = errors.New("parsing: unexpected input")

	// ErrTrailingInput is matched when a parser succeeded but Parse found
	// unconsumed input after it.
	ErrTrailingInput = errors.New("parsing: unconsumed trailing input")
)

// excerptLen bounds the slice of input quoted in an Error message.
const excerptLen = 16

// Error reports where and why parsing stopped.
// It matches ErrUnexpectedInput or ErrTrailingInput with errors.Is, and
// also any cause raised by a TryMap conversion.
type Error struct {
	// Offset is the byte offset into the input handed to Parse.
	// It is only meaningful on errors returned by Parse.
	Offset int

	// Want describes what the failing parser expected.
	Want string

	kind  error
	cause error
	rest  string // input remaining at the failure point
}

// fail builds an ErrUnexpectedInput failure at in.
func fail(in, want string) *Error {
	return &Error{Want: want, kind: ErrUnexpectedInput, rest: in}
}

func (e *Error) Error() string {
	found := e.rest
	if len(found) > excerptLen {
		found = found[:excerptLen] + "…"
	}
	msg := fmt.Sprintf("%v at offset %d: want %s, found %q", e.kind, e.Offset, e.Want, found)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}

	return msg
}

// Unwrap exposes the sentinel kind and, when present, the conversion cause.
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}

	return []error{e.kind, e.cause}
}

// locate fills in Offset for any *Error in err, relative to input.
func locate(input string, err error) error {
	var pe *Error
	if errors.As(err, &pe) {
		pe.Offset = len(input) - len(pe.rest)
	}

	return err
}
