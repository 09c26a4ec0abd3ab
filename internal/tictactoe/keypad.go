package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
)

// Labels follow a numeric keypad: label 1 is the bottom-left cell and labels grow left to
// right, then bottom to top. On a 3x3 board label 9 is the top-right cell.

// LabelToIndex - maps a 1-based keypad label to a position on a board of the given size.
func LabelToIndex(size, label int) (entity.Position, error) {
	if label < 1 || label > size*size {
		return entity.Position{}, fmt.Errorf("%w: label %d, expected 1..%d", apperror.ErrOutOfBounds, label, size*size)
	}

	k := label - 1

	return entity.Position{Row: size - 1 - k/size, Col: k % size}, nil
}

// IndexToLabel - inverse of LabelToIndex. The position is expected to be inside the board.
func IndexToLabel(size, row, col int) int {
	return (size-1-row)*size + col + 1
}

// PositionLabel - label of a position on this board.
func (that *Board) PositionLabel(pos entity.Position) int {
	return IndexToLabel(that.size, pos.Row, pos.Col)
}
