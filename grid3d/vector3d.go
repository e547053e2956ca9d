// SPDX-License-Identifier: MIT

// Package grid3d provides an integer point in three-dimensional space.
//
// Vector3D carries no coordinate system or units; it is a comparable value
// type suitable as a map key. Distances are squared so that ranking points
// stays in exact integer arithmetic.
package grid3d

import (
	"errors"
	"fmt"
)

// ErrComponentCount indicates a slice that does not hold exactly three values.
var ErrComponentCount = errors.New("grid3d: Vector3D requires exactly 3 integers")

// Vector3D is an (X, Y, Z) integer point.
type Vector3D struct {
	X, Y, Z int
}

// NewVector3D returns the point (x, y, z).
func NewVector3D(x, y, z int) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Vector3DFromSlice builds a point from [x, y, z].
// It panics with ErrComponentCount unless len(list) == 3.
func Vector3DFromSlice(list []int) Vector3D {
	if len(list) != 3 {
		panic(fmt.Errorf("%w: got %d", ErrComponentCount, len(list)))
	}

	return Vector3D{X: list[0], Y: list[1], Z: list[2]}
}

// SquaredDistanceTo returns dx² + dy² + dz² between v and other.
// No square root is taken, so use it to rank points, not to measure them.
func (v Vector3D) SquaredDistanceTo(other Vector3D) int {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z

	return dx*dx + dy*dy + dz*dz
}

// String returns "[x, y, z]".
func (v Vector3D) String() string {
	return fmt.Sprintf("[%d, %d, %d]", v.X, v.Y, v.Z)
}
