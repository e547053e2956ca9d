// Package seq builds lazy sequences by repeatedly applying a step function,
// and runs a state forward until it stops changing.
//
// What:
//
//   - Iterate(start, step) yields start, step(start), step(step(start)), …
//     without end. Take, TakeWhile and Collect bound and drain it.
//   - IterateUntilStable runs a simulation until a state equals its
//     successor and returns every state seen along the way.
//
// Why:
//
//	Many puzzle simulations ("move the rocks until nothing moves",
//	"halve until one") are a fixed-point search over a step function.
//	Writing them as a sequence keeps the loop and the stop condition in one
//	place and the step function pure.
//
// Options:
//
//	WithMaxIterations(n) caps the number of step calls. n == 0 means no
//	cap; n < 0 is a programmer error and panics with ErrOptionViolation.
//
// Complexity: O(k) step calls and O(k) memory for k returned states.
package seq
