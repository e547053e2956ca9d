// SPDX-License-Identifier: MIT

// Package numeric collects the integer helpers puzzle solutions keep reaching
// for: extended Euclid, true modulo, a 2×2 linear Diophantine solver, digit
// folding and order-preserving digit selection.
//
// All functions are pure. Expected absence (no integer solution) is reported
// with an ok flag; precondition violations (BubbleDigits asked for more digits
// than it was given) panic with a wrapped sentinel.
package numeric
