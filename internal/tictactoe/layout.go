package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
)

// ParseBoard - builds a board from one string per row, top row first.
// 'X' and 'O' are markers, '.' or '_' is an empty cell. Spaces are ignored.
func ParseBoard(rows ...string) (*Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != board.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", apperror.ErrInvalidBoardSize, row, len(line), board.size)
		}

		for col, char := range line {
			switch char {
			case 'X', 'x':
				board.cells[board.index(row, col)] = entity.Occupied(entity.SideA)
			case 'O', 'o':
				board.cells[board.index(row, col)] = entity.Occupied(entity.SideB)
			case '.', '_':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d", apperror.ErrInvalidInput, char, row)
			}
		}
	}

	return board, nil
}

// Complement - returns a copy of the board with the owner of every occupied cell swapped.
func (that *Board) Complement() *Board {
	next := that.Clone()
	for i, cell := range next.cells {
		next.cells[i] = cell.Complement()
	}

	return next
}

// String - compact layout in the ParseBoard format, rows separated by '/'.
func (that *Board) String() string {
	var sb strings.Builder
	for i, cell := range that.cells {
		if i > 0 && i%that.size == 0 {
			sb.WriteByte('/')
		}

		if side, ok := cell.Side(); ok {
			sb.WriteString(side.String())
		} else {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}
