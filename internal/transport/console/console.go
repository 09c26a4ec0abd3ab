package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
)

// Console is the terminal front end: it reads answers line by line and writes the board,
// the prompts and the results with termenv styling.
type Console struct {
	out     *termenv.Output
	scanner *bufio.Scanner
}

func New(in io.Reader, out io.Writer) *Console {
	return NewWithOutput(in, termenv.NewOutput(out))
}

// NewWithOutput - lets the caller pick the color profile, tests use termenv.Ascii.
func NewWithOutput(in io.Reader, out *termenv.Output) *Console {
	return &Console{
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// ReadLine - next line without the trailing newline, io.EOF once the input is exhausted.
func (that *Console) ReadLine() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read line: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(that.scanner.Text()), nil
}

// Prompt - asks the side to move for a cell.
func (that *Console) Prompt(side entity.Side) {
	that.printf("%s: ", that.mark(side))
}

// Reject - explains why the last answer was refused.
func (that *Console) Reject(_ entity.Side, reason error) {
	switch {
	case errors.Is(reason, apperror.ErrCellOccupied):
		that.println("That spot is already taken! Please enter again.")
	case errors.Is(reason, apperror.ErrOutOfBounds):
		that.println("That is not a choice! Please enter again.")
	default:
		that.println("Failed to read number. Please enter again.")
	}
}

// Computing - shown while a computer player decides.
func (that *Console) Computing(side entity.Side) {
	that.printf("%s: Computing...\n", that.mark(side))
}

// Failure - reports an error that ended the session.
func (that *Console) Failure(err error) {
	that.println(that.out.String("Error:").Foreground(termenv.ANSIRed).String(), err.Error())
}

func (that *Console) mark(side entity.Side) string {
	style := that.out.String(side.String()).Bold()

	switch side {
	case entity.SideA:
		style = style.Foreground(termenv.ANSIRed)
	case entity.SideB:
		style = style.Foreground(termenv.ANSIBlue)
	}

	return style.String()
}

func (that *Console) bold(text string) string {
	return that.out.String(text).Bold().String()
}

func (that *Console) underline(text string) string {
	return that.out.String(text).Underline().String()
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Console) println(args ...any) {
	_, _ = fmt.Fprintln(that.out, args...)
}
