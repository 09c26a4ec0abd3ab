package apperror

import "errors"

var (
	ErrOutOfBounds      = errors.New("cell index is out of bounds")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrNoLegalMove      = errors.New("no legal move left on the board")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInputClosed      = errors.New("input source is closed")
	ErrUnknownStrategy  = errors.New("unknown strategy")
	ErrInvalidBoardSize = errors.New("invalid board size")
)
