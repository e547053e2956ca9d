// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow indicates a result that does not fit in the operand type.
var ErrOverflow = errors.New("numeric: result overflows operand type")

// ExtendedEuclid computes g = gcd(a, b) and Bézout coefficients x, y with
//
//	a*x + b*y == g
//
// g is never negative, including for negative or zero inputs.
// It panics with ErrOverflow when g is the type's minimum value negated,
// which happens only for (MinInt, 0), (0, MinInt) and (MinInt, MinInt).
// Complexity: O(log min(|a|, |b|)) recursive steps.
func ExtendedEuclid[T constraints.Signed](a, b T) (g, x, y T) {
	if b == 0 {
		if a < 0 {
			if -a < 0 {
				panic(fmt.Errorf("%w: gcd(%d, 0)", ErrOverflow, a))
			}

			return -a, -1, 0
		}

		return a, 1, 0
	}
	g, x1, y1 := ExtendedEuclid(b, a%b)

	return g, y1, x1 - (a/b)*y1
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD[T constraints.Signed](a, b T) T {
	g, _, _ := ExtendedEuclid(a, b)

	return g
}

// LCM returns the non-negative least common multiple of a and b,
// or 0 when either is 0.
func LCM[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}

// Mod returns the r with 0 <= r < |n| and r ≡ x (mod n).
// Unlike the % operator it never returns a negative value for negative x.
// n must be non-zero. n is never negated, so n == MinInt is handled.
func Mod[T constraints.Integer](x, n T) T {
	r := x % n
	if r < 0 {
		if n < 0 {
			return r - n
		}

		return r + n
	}

	return r
}
