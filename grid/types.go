// SPDX-License-Identifier: MIT

package grid

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: Up, Right, Down, Left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Offsets returns the offsets walked under conn, in a fixed order so that
// traversals built on it are deterministic.
func (conn Connectivity) Offsets() []Offset {
	if conn == Conn8 {
		return AllOffsets()
	}

	return []Offset{Up, Right, Down, Left}
}

// String returns "Conn4" or "Conn8".
func (conn Connectivity) String() string {
	if conn == Conn8 {
		return "Conn8"
	}

	return "Conn4"
}

// Grid is an immutable rectangular container of elements addressed by Cell.
// Width and Height are fixed at construction; storage is row-major and owned
// exclusively by the Grid. There is no mutating operation: transformations
// return new grids.
type Grid[T comparable] struct {
	width, height int
	cells         []T
}
