package tictactoe

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
)

const (
	ClassicSize = 3
	MinSize     = 3
)

// Board is a square grid of cells. Cells are stored row-major, row 0 is the top row.
type Board struct {
	size  int
	cells []entity.Cell
	width int
}

// NewBoard - creates an empty board of the given side length with keypad labels.
func NewBoard(size int) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d, at least %d required", apperror.ErrInvalidBoardSize, size, MinSize)
	}

	board := &Board{
		size:  size,
		cells: make([]entity.Cell, size*size),
	}
	board.Reset()

	return board, nil
}

// MustNewBoard - same as NewBoard but panics on an invalid size.
func MustNewBoard(size int) *Board {
	board, err := NewBoard(size)
	if err != nil {
		panic(err)
	}

	return board
}

func (that *Board) Size() int {
	return that.size
}

// Width - returns the printed length of the longest label.
func (that *Board) Width() int {
	return that.width
}

// Cell - returns the content of a cell.
func (that *Board) Cell(row, col int) (entity.Cell, error) {
	if !that.inBounds(row, col) {
		return entity.Cell{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[that.index(row, col)], nil
}

// Rows - returns a copy of the grid for rendering.
func (that *Board) Rows() [][]entity.Cell {
	rows := make([][]entity.Cell, that.size)
	for row := range that.size {
		rows[row] = make([]entity.Cell, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

// Place - puts the side's marker into an empty cell.
func (that *Board) Place(pos entity.Position, side entity.Side) error {
	if err := that.validateMove(pos, side); err != nil {
		return err
	}

	that.cells[that.index(pos.Row, pos.Col)] = entity.Occupied(side)

	return nil
}

// validateMove - checks if the move is valid.
func (that *Board) validateMove(pos entity.Position, side entity.Side) error {
	if !side.Valid() {
		return fmt.Errorf("invalid side %d", side)
	}

	if !that.inBounds(pos.Row, pos.Col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, pos.Row, pos.Col)
	}

	if !that.cells[that.index(pos.Row, pos.Col)].IsEmpty() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, pos.Row, pos.Col)
	}

	return nil
}

// Blanks - returns every empty position in row-major order.
func (that *Board) Blanks() []entity.Position {
	blanks := make([]entity.Position, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell.IsEmpty() {
			blanks = append(blanks, entity.Position{Row: i / that.size, Col: i % that.size})
		}
	}

	return blanks
}

func (that *Board) HasBlanks() bool {
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return true
		}
	}

	return false
}

// CheckWin - reports whether any row, column or diagonal is fully owned by the side.
func (that *Board) CheckWin(side entity.Side) bool {
	if !side.Valid() {
		return false
	}

	mainDiagonal, antiDiagonal := true, true
	for i := range that.size {
		row, col := true, true
		for j := range that.size {
			row = row && that.cells[that.index(i, j)].Is(side)
			col = col && that.cells[that.index(j, i)].Is(side)
		}

		if row || col {
			return true
		}

		mainDiagonal = mainDiagonal && that.cells[that.index(i, i)].Is(side)
		antiDiagonal = antiDiagonal && that.cells[that.index(i, that.size-1-i)].Is(side)
	}

	return mainDiagonal || antiDiagonal
}

// State - returns the board outcome. Side A is checked before side B.
func (that *Board) State() entity.State {
	switch {
	case that.CheckWin(entity.SideA):
		return entity.StateWinA
	case that.CheckWin(entity.SideB):
		return entity.StateWinB
	case !that.HasBlanks():
		return entity.StateDraw
	default:
		return entity.StateIncomplete
	}
}

// Reset - empties every cell and restores the keypad labels.
func (that *Board) Reset() {
	for i := range that.cells {
		row, col := i/that.size, i%that.size
		that.cells[i] = entity.Empty(IndexToLabel(that.size, row, col))
	}

	that.width = len(strconv.Itoa(that.size * that.size))
}

// Clone - returns an independent copy of the board.
func (that *Board) Clone() *Board {
	cells := make([]entity.Cell, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		size:  that.size,
		cells: cells,
		width: that.width,
	}
}

// With - returns a copy of the board with the side placed at pos.
// The position must be empty and inside the board.
func (that *Board) With(pos entity.Position, side entity.Side) *Board {
	next := that.Clone()
	next.cells[next.index(pos.Row, pos.Col)] = entity.Occupied(side)

	return next
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) index(row, col int) int {
	return row*that.size + col
}
