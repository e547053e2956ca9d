// SPDX-License-Identifier: MIT

package grid

// Offset is a directional step relative to a Cell: the four orthogonal
// directions and the four diagonals.
type Offset int

// Offset constants.
const (
	// Up moves one row up (Row-1).
	Up Offset = iota
	// Right moves one column right (Col+1).
	Right
	// Down moves one row down (Row+1).
	Down
	// Left moves one column left (Col-1).
	Left
	// TopLeft moves up and left.
	TopLeft
	// TopRight moves up and right.
	TopRight
	// BottomLeft moves down and left.
	BottomLeft
	// BottomRight moves down and right.
	BottomRight
)

// offsetDeltas maps each Offset to its (dRow, dCol) pair.
var offsetDeltas = [...][2]int{
	Up:          {-1, 0},
	Right:       {0, 1},
	Down:        {1, 0},
	Left:        {0, -1},
	TopLeft:     {-1, -1},
	TopRight:    {-1, 1},
	BottomLeft:  {1, -1},
	BottomRight: {1, 1},
}

var offsetNames = [...]string{
	Up:          "Up",
	Right:       "Right",
	Down:        "Down",
	Left:        "Left",
	TopLeft:     "TopLeft",
	TopRight:    "TopRight",
	BottomLeft:  "BottomLeft",
	BottomRight: "BottomRight",
}

// Delta returns the row and column offsets for o.
// An unknown Offset yields (0, 0).
func (o Offset) Delta() (dRow, dCol int) {
	if !o.IsValid() {
		return 0, 0
	}
	d := offsetDeltas[o]

	return d[0], d[1]
}

// IsValid reports whether o is one of the eight defined offsets.
func (o Offset) IsValid() bool {
	return o >= Up && o <= BottomRight
}

// String returns the offset name.
func (o Offset) String() string {
	if !o.IsValid() {
		return "Unknown"
	}

	return offsetNames[o]
}

// Orthogonal returns the four orthogonal offsets: Up, Down, Left, Right.
// A fresh slice is returned on every call.
func Orthogonal() []Offset {
	return []Offset{Up, Down, Left, Right}
}

// Diagonal returns the four diagonal offsets.
func Diagonal() []Offset {
	return []Offset{TopLeft, TopRight, BottomLeft, BottomRight}
}

// AllOffsets returns all eight offsets, orthogonal first.
func AllOffsets() []Offset {
	return []Offset{Up, Right, Down, Left, TopLeft, TopRight, BottomLeft, BottomRight}
}
