// SPDX-License-Identifier: MIT

package numeric

// DiophantineEEA solves the 2×2 linear system
//
//	ax*m + bx*n = cx
//	ay*m + by*n = cy
//
// over the integers by eliminating n and back-substituting.
//
// ok is false when no integer solution exists: the eliminated coefficient is
// zero, its right-hand side does not divide evenly, or the back-substituted
// numerator does not divide evenly. n is recovered from the first equation,
// or from the second when bx == 0. No rounding is ever applied.
func DiophantineEEA(ax, bx, ay, by, cx, cy int) (m, n int, ok bool) {
	aPrime := ay*bx - by*ax
	cPrime := cy*bx - by*cx
	if aPrime == 0 || cPrime%aPrime != 0 {
		return 0, 0, false
	}
	m = cPrime / aPrime

	// aPrime != 0 rules out bx == by == 0
	coef, numerator := bx, cx-ax*m
	if bx == 0 {
		coef, numerator = by, cy-ay*m
	}
	if numerator%coef != 0 {
		return 0, 0, false
	}

	return m, numerator / coef, true
}
