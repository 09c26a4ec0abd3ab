package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/service"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
	"github.com/rocketscienceinc/xo-engine/internal/usecase"
	"github.com/rocketscienceinc/xo-engine/testing/suite"
)

func newConsole(input string) (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

	return NewWithOutput(strings.NewReader(input), out), &buf
}

func TestConsole_ReadLine(t *testing.T) {
	console, _ := newConsole(" 5 \n\n7")

	line, err := console.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "5", line)

	line, err = console.ReadLine()
	require.NoError(t, err)
	assert.Empty(t, line)

	line, err = console.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "7", line)

	_, err = console.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestConsole_RenderBoard(t *testing.T) {
	t.Run("Empty classic board shows keypad labels", func(t *testing.T) {
		console, _ := newConsole("")

		rendered := console.RenderBoard(tictactoe.MustNewBoard(tictactoe.ClassicSize))

		assert.Equal(t, ""+
			" 7 | 8 | 9 \n"+
			"---+---+---\n"+
			" 4 | 5 | 6 \n"+
			"---+---+---\n"+
			" 1 | 2 | 3 \n", rendered)
	})

	t.Run("Markers replace labels", func(t *testing.T) {
		console, _ := newConsole("")
		board, err := tictactoe.ParseBoard("X..", ".O.", "..X")
		require.NoError(t, err)

		rendered := console.RenderBoard(board)

		assert.Equal(t, ""+
			" X | 8 | 9 \n"+
			"---+---+---\n"+
			" 4 | O | 6 \n"+
			"---+---+---\n"+
			" 1 | 2 | X \n", rendered)
	})

	t.Run("Wide labels pad every cell", func(t *testing.T) {
		console, _ := newConsole("")
		board := tictactoe.MustNewBoard(4)
		require.NoError(t, board.Place(entity.Position{Row: 3, Col: 0}, entity.SideB))

		lines := strings.Split(console.RenderBoard(board), "\n")

		assert.Equal(t, " 13 | 14 | 15 | 16 ", lines[0])
		assert.Equal(t, "----+----+----+----", lines[1])
		assert.Equal(t, "  O |  2 |  3 |  4 ", lines[6])
	})

	t.Run("ShowBoard clears the screen first", func(t *testing.T) {
		console, buf := newConsole("")

		console.ShowBoard(tictactoe.MustNewBoard(tictactoe.ClassicSize))

		output := buf.String()
		assert.True(t, strings.HasPrefix(output, "\x1b["))
		assert.Contains(t, output, " 1 | 2 | 3 \n")
	})
}

func TestConsole_Reject(t *testing.T) {
	console, buf := newConsole("")

	console.Reject(entity.SideA, apperror.ErrCellOccupied)
	console.Reject(entity.SideA, apperror.ErrOutOfBounds)
	console.Reject(entity.SideA, apperror.ErrInvalidInput)

	assert.Equal(t, ""+
		"That spot is already taken! Please enter again.\n"+
		"That is not a choice! Please enter again.\n"+
		"Failed to read number. Please enter again.\n", buf.String())
}

func TestConsole_HumanPlayer(t *testing.T) {
	// Given: the center is taken and the user types garbage, an out of range
	// label, the center and finally the bottom right cell
	console, buf := newConsole("abc\n10\n5\n3\n")
	board, err := tictactoe.ParseBoard("...", ".O.", "...")
	require.NoError(t, err)

	human := service.NewHuman(console, console)

	// When: the human chooses
	pos, err := human.Choose(board, entity.SideA)
	require.NoError(t, err)

	// Then: every refusal is explained and the blank cell is accepted
	assert.Equal(t, entity.Position{Row: 2, Col: 2}, pos)
	output := buf.String()
	assert.Equal(t, 4, strings.Count(output, "X: "))
	assert.Contains(t, output, "Failed to read number.")
	assert.Contains(t, output, "That is not a choice!")
	assert.Contains(t, output, "That spot is already taken!")
}

func TestConsole_ChoosePlayer(t *testing.T) {
	t.Run("User", func(t *testing.T) {
		console, buf := newConsole("U\n")

		kind, err := console.ChoosePlayer(entity.SideA)
		require.NoError(t, err)

		assert.Equal(t, entity.StrategyHuman, kind)
		assert.Contains(t, buf.String(), "Player X [User/CPU]: ")
	})

	t.Run("Computer levels", func(t *testing.T) {
		cases := map[string]entity.StrategyKind{
			"a": entity.StrategyHeuristic,
			"R": entity.StrategyRandom,
			"g": entity.StrategySearch,
		}

		for answer, expected := range cases {
			console, buf := newConsole("c\n" + answer + "\n")

			kind, err := console.ChoosePlayer(entity.SideB)
			require.NoError(t, err)

			assert.Equal(t, expected, kind, answer)
			assert.Contains(t, buf.String(), "Level: [Average/Random/Good]: ")
		}
	})

	t.Run("Unreadable answers are asked again", func(t *testing.T) {
		console, buf := newConsole("x\nc\nq\ng\n")

		kind, err := console.ChoosePlayer(entity.SideA)
		require.NoError(t, err)

		assert.Equal(t, entity.StrategySearch, kind)
		assert.Equal(t, 2, strings.Count(buf.String(), retryMessage))
	})

	t.Run("Closed input", func(t *testing.T) {
		console, _ := newConsole("c\n")

		_, err := console.ChoosePlayer(entity.SideA)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_PlayAgain(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Upper Y", input: "Y\n", expected: true},
		{name: "Lower y", input: "y\n", expected: true},
		{name: "Empty line", input: "\n", expected: true},
		{name: "Upper N", input: "N\n", expected: false},
		{name: "Lower n", input: "n\n", expected: false},
		{name: "Retry then yes", input: "maybe\nyes\ny\n", expected: true},
		{name: "Closed input", input: "", expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			console, _ := newConsole(tc.input)

			assert.Equal(t, tc.expected, console.PlayAgain())
		})
	}

	t.Run("Retries are explained", func(t *testing.T) {
		console, buf := newConsole("maybe\nn\n")

		require.False(t, console.PlayAgain())
		assert.Equal(t, 2, strings.Count(buf.String(), "Play again? [Y/n] "))
		assert.Contains(t, buf.String(), "Failed to read input. Please try again.")
	})
}

func TestConsole_Tally(t *testing.T) {
	console, _ := newConsole("")

	assert.Equal(t, "X: 2, O: 1, Draws: 4", console.Tally(entity.Tally{WinsA: 2, WinsB: 1, Draws: 4}))
}

func TestObserver_BoardShownBeforeFirstPrompt(t *testing.T) {
	_, st := suite.New(t)

	// Given: two human players on the console
	console, buf := newConsole("5\n")
	human := service.NewHuman(console, console)
	scheduler := usecase.NewScheduler(st.Logger, tictactoe.MustNewBoard(tictactoe.ClassicSize),
		human, human, st.Rand, console.Observer())

	// When: the round starts and the first side moves
	scheduler.Start()
	_, err := scheduler.Step()
	require.NoError(t, err)

	// Then: the labeled board is drawn before the first prompt
	output := buf.String()
	prompt := firstIndex(output, "X: ", "O: ")
	require.GreaterOrEqual(t, prompt, 0)

	labels := strings.Index(output, " 7 | 8 | 9 ")
	require.GreaterOrEqual(t, labels, 0)
	assert.Less(t, labels, prompt)
	assert.Less(t, strings.Index(output, "moves first"), prompt)
}

func firstIndex(text string, needles ...string) int {
	first := -1
	for _, needle := range needles {
		if i := strings.Index(text, needle); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}

	return first
}

func TestSession_Run(t *testing.T) {
	t.Run("Plays until the user declines", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the user accepts one more round and then declines
		console, buf := newConsole("\nn\n")
		scheduler := usecase.NewScheduler(st.Logger, tictactoe.MustNewBoard(tictactoe.ClassicSize),
			console.Announce(service.NewRandom(st.Rand)), service.NewRandom(st.Rand), st.Rand, console.Observer())

		// When: the session runs
		err := NewSession(st.Logger, console, scheduler).Run(ctx)
		require.NoError(t, err)

		// Then: two rounds were played and reported
		assert.Equal(t, 2, scheduler.Tally().Total())
		output := buf.String()
		assert.Equal(t, 2, strings.Count(output, "Play again? [Y/n] "))
		assert.Equal(t, 2, strings.Count(output, "Draws: "))
		assert.Contains(t, output, "moves first")
		assert.Contains(t, output, "X: Computing...")
	})

	t.Run("Closed input ends the session cleanly", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a human player with nothing to read
		console, _ := newConsole("")
		scheduler := usecase.NewScheduler(st.Logger, tictactoe.MustNewBoard(tictactoe.ClassicSize),
			service.NewHuman(console, console), service.NewHuman(console, console), st.Rand, console.Observer())

		// When: the session runs
		err := NewSession(st.Logger, console, scheduler).Run(ctx)

		// Then: no error and nothing counted
		require.NoError(t, err)
		assert.Zero(t, scheduler.Tally().Total())
	})

	t.Run("Other failures are returned", func(t *testing.T) {
		ctx, st := suite.New(t)

		console, _ := newConsole("")
		rounds := failingRounds{err: apperror.ErrNoLegalMove}

		err := NewSession(st.Logger, console, rounds).Run(ctx)

		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		console, _ := newConsole("")

		err := NewSession(st.Logger, console, failingRounds{}).Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

type failingRounds struct {
	err error
}

func (that failingRounds) PlayRound() (entity.State, error) {
	return entity.StateIncomplete, that.err
}
