package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

// ShowBoard - clears the screen and draws the board.
func (that *Console) ShowBoard(board *tictactoe.Board) {
	that.out.ClearScreen()
	that.printf("%s", that.RenderBoard(board))
}

// RenderBoard - one line per row with '|' between cells and a '+' joined rule between rows.
// Blank cells show their keypad label, every cell is padded to the widest label.
func (that *Console) RenderBoard(board *tictactoe.Board) string {
	width := board.Width()
	rule := that.bold(strings.Repeat("-", width+2))
	separator := that.bold("|")

	rules := make([]string, board.Size())
	for i := range rules {
		rules[i] = rule
	}
	ruleLine := strings.Join(rules, that.bold("+"))

	var sb strings.Builder
	for row, cells := range board.Rows() {
		if row > 0 {
			sb.WriteString(ruleLine)
			sb.WriteByte('\n')
		}

		for col, cell := range cells {
			if col > 0 {
				sb.WriteString(separator)
			}

			sb.WriteByte(' ')
			sb.WriteString(that.cell(cell, width))
			sb.WriteByte(' ')
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Console) cell(cell entity.Cell, width int) string {
	text := fmt.Sprintf("%*s", width, cell.String())

	side, ok := cell.Side()
	if !ok {
		return that.bold(text)
	}

	padding := text[:len(text)-len(side.String())]

	return padding + that.mark(side)
}
