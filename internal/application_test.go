package application

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/config"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/transport/console"
	"github.com/rocketscienceinc/xo-engine/testing/suite"
)

func newTerm(input string) (*console.Console, *bytes.Buffer) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

	return console.NewWithOutput(strings.NewReader(input), out), &buf
}

func TestResolvePlayers(t *testing.T) {
	t.Run("Configured players are not asked for", func(t *testing.T) {
		term, buf := newTerm("")
		conf := &config.Config{Players: config.Players{X: "search", O: "random"}}

		players, err := resolvePlayers(conf, term)
		require.NoError(t, err)

		assert.Equal(t, []entity.Player{
			{Mark: entity.SideA, Strategy: entity.StrategySearch},
			{Mark: entity.SideB, Strategy: entity.StrategyRandom},
		}, players)
		assert.Empty(t, buf.String())
	})

	t.Run("Missing player is chosen on the console", func(t *testing.T) {
		term, buf := newTerm("c\na\n")
		conf := &config.Config{Players: config.Players{X: "human"}}

		players, err := resolvePlayers(conf, term)
		require.NoError(t, err)

		assert.Equal(t, entity.StrategyHuman, players[0].Strategy)
		assert.Equal(t, entity.StrategyHeuristic, players[1].Strategy)
		assert.Contains(t, buf.String(), "Player O")
	})

	t.Run("Closed input", func(t *testing.T) {
		term, _ := newTerm("")

		_, err := resolvePlayers(&config.Config{}, term)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestRunArena(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a small seeded arena between search and random
	term, buf := newTerm("")
	conf := &config.Config{
		Mode:    config.ModeArena,
		Seed:    11,
		Board:   config.Board{Size: 3},
		Search:  config.Search{DepthCap: 9},
		Players: config.Players{X: "good", O: "random"},
		Arena:   config.Arena{Games: 6, Workers: 2},
	}
	require.NoError(t, conf.Validate())

	// When: it runs
	err := runArena(ctx, st.Logger, conf, term)
	require.NoError(t, err)

	// Then: the summary line is printed and O never wins
	output := buf.String()
	assert.Contains(t, output, "O: 0,")
	assert.Contains(t, output, "Draws: ")
}

func TestRunConsole(t *testing.T) {
	t.Run("Quick players play without a thinking notice", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: random and heuristic players and a user who declines a second round
		term, buf := newTerm("n\n")
		conf := &config.Config{
			Seed:    5,
			Board:   config.Board{Size: 3},
			Search:  config.Search{DepthCap: 9},
			Players: config.Players{X: "random", O: "average"},
		}

		// When: the console session runs
		err := runConsole(ctx, st.Logger, conf, term)
		require.NoError(t, err)

		// Then: one round is reported and nobody is shown computing
		output := buf.String()
		assert.Equal(t, 1, strings.Count(output, "Play again? [Y/n] "))
		assert.NotContains(t, output, "Computing...")
	})

	t.Run("Search player announces its turns", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: search as X against random as O
		term, buf := newTerm("n\n")
		conf := &config.Config{
			Seed:    5,
			Board:   config.Board{Size: 3},
			Search:  config.Search{DepthCap: 9},
			Players: config.Players{X: "good", O: "random"},
		}

		// When: the console session runs
		err := runConsole(ctx, st.Logger, conf, term)
		require.NoError(t, err)

		// Then: only X is shown computing
		output := buf.String()
		assert.Contains(t, output, "X: Computing...")
		assert.NotContains(t, output, "O: Computing...")
	})
}
