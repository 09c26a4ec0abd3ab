package entity

import "strconv"

// Side is one of the two competing players.
type Side uint8

const (
	SideNone Side = iota
	SideA
	SideB
)

const (
	MarkA = "X"
	MarkB = "O"
)

var Sides = [2]Side{SideA, SideB}

// Opponent - returns the other side. SideNone has no opponent and is returned as is.
func (that Side) Opponent() Side {
	switch that {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return SideNone
	}
}

// WinState - returns the board state in which this side has won.
func (that Side) WinState() State {
	switch that {
	case SideA:
		return StateWinA
	case SideB:
		return StateWinB
	default:
		return StateIncomplete
	}
}

func (that Side) Valid() bool {
	return that == SideA || that == SideB
}

func (that Side) String() string {
	switch that {
	case SideA:
		return MarkA
	case SideB:
		return MarkB
	default:
		return "-"
	}
}

// Cell is either occupied by a side or empty with a display label.
// The label is only for display; occupancy is decided by the side alone.
type Cell struct {
	side  Side
	label int
}

func Occupied(side Side) Cell {
	return Cell{side: side}
}

func Empty(label int) Cell {
	return Cell{label: label}
}

func (that Cell) IsEmpty() bool {
	return that.side == SideNone
}

// Side - returns the owner of the cell and whether the cell is occupied at all.
func (that Cell) Side() (Side, bool) {
	return that.side, that.side != SideNone
}

// Label - returns the display label of an empty cell, 0 for occupied cells.
func (that Cell) Label() int {
	if !that.IsEmpty() {
		return 0
	}

	return that.label
}

// Is - reports whether the cell is occupied by the given side.
func (that Cell) Is(side Side) bool {
	return side != SideNone && that.side == side
}

// Complement - swaps the owner of an occupied cell, empty cells are unchanged.
func (that Cell) Complement() Cell {
	if that.IsEmpty() {
		return that
	}

	return Occupied(that.side.Opponent())
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return strconv.Itoa(that.label)
	}

	return that.side.String()
}
