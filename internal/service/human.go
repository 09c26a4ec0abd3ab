package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

// LineReader supplies one raw line of text per call.
type LineReader interface {
	ReadLine() (string, error)
}

// Prompter shows the human what is expected and why an answer was refused.
type Prompter interface {
	Prompt(side entity.Side)
	Reject(side entity.Side, reason error)
}

// Human asks for a cell until the input names a blank one.
type Human struct {
	input    LineReader
	prompter Prompter
}

func NewHuman(input LineReader, prompter Prompter) *Human {
	return &Human{
		input:    input,
		prompter: prompter,
	}
}

// Choose - re-prompts on unreadable, out of range and occupied cells. Only a failing input
// source ends the loop with an error.
func (that *Human) Choose(board *tictactoe.Board, side entity.Side) (entity.Position, error) {
	for {
		that.prompter.Prompt(side)

		line, err := that.input.ReadLine()
		if err != nil {
			return entity.Position{}, fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
		}

		pos, err := ParseCell(board, line)
		if err != nil {
			that.prompter.Reject(side, err)
			continue
		}

		return pos, nil
	}
}

// ParseCell - reads either a keypad label ("5") or a 1-based "row col" / "row,col" pair
// counted from the top-left corner, and checks that the cell is blank.
func ParseCell(board *tictactoe.Board, line string) (entity.Position, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var (
		pos entity.Position
		err error
	)

	switch len(fields) {
	case 1:
		pos, err = parseLabel(board.Size(), fields[0])
	case 2:
		pos, err = parsePair(board.Size(), fields[0], fields[1])
	default:
		err = fmt.Errorf("%w: expected a cell number", apperror.ErrInvalidInput)
	}

	if err != nil {
		return entity.Position{}, err
	}

	cell, err := board.Cell(pos.Row, pos.Col)
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	if !cell.IsEmpty() {
		return entity.Position{}, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, board.PositionLabel(pos))
	}

	return pos, nil
}

func parseLabel(size int, field string) (entity.Position, error) {
	label, err := strconv.Atoi(field)
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, field)
	}

	pos, err := tictactoe.LabelToIndex(size, label)
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	return pos, nil
}

func parsePair(size int, rowField, colField string) (entity.Position, error) {
	row, err := strconv.Atoi(rowField)
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, rowField)
	}

	col, err := strconv.Atoi(colField)
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, colField)
	}

	if row < 1 || row > size || col < 1 || col > size {
		return entity.Position{}, fmt.Errorf("%w: %w: row and column must be within 1..%d",
			apperror.ErrInvalidInput, apperror.ErrOutOfBounds, size)
	}

	return entity.Position{Row: row - 1, Col: col - 1}, nil
}
