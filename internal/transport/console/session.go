package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
	"github.com/rocketscienceinc/xo-engine/internal/usecase"
)

// Rounds is what the session loop drives, usually a *usecase.Scheduler.
type Rounds interface {
	PlayRound() (entity.State, error)
}

// Observer prints the board after every placement and the counters after every round.
type Observer struct {
	console *Console
}

func (that *Console) Observer() *Observer {
	return &Observer{console: that}
}

// RoundStarted - draws the empty board so the keypad labels are known before the first prompt.
func (that *Observer) RoundStarted(board *tictactoe.Board, first entity.Side) {
	that.console.ShowBoard(board)
	that.console.printf("%s moves first\n", that.console.mark(first))
}

func (that *Observer) Placed(board *tictactoe.Board, _ entity.Side, _ entity.Position) {
	that.console.ShowBoard(board)
}

func (that *Observer) RoundFinished(outcome entity.State, tally entity.Tally) {
	switch outcome {
	case entity.StateWinA, entity.StateWinB:
		that.console.printf("%s wins!\n", that.console.mark(outcome.Winner()))
	case entity.StateDraw:
		that.console.println(that.console.bold("Draw!"))
	}

	that.console.ShowTally(tally)
}

// Tally - "X: n, O: n, Draws: n".
func (that *Console) Tally(tally entity.Tally) string {
	return fmt.Sprintf("%s: %d, %s: %d, %s: %d",
		that.mark(entity.SideA), tally.WinsA,
		that.mark(entity.SideB), tally.WinsB,
		that.bold("Draws"), tally.Draws)
}

func (that *Console) ShowTally(tally entity.Tally) {
	that.println(that.Tally(tally))
}

// Announce - wraps a slow computer strategy so the console shows it is thinking.
func (that *Console) Announce(strategy usecase.Strategy) usecase.Strategy {
	return &announced{console: that, strategy: strategy}
}

type announced struct {
	console  *Console
	strategy usecase.Strategy
}

func (that *announced) Choose(board *tictactoe.Board, side entity.Side) (entity.Position, error) {
	that.console.Computing(side)

	return that.strategy.Choose(board, side)
}

// Session plays rounds until the user declines another one.
type Session struct {
	logger  *slog.Logger
	console *Console
	rounds  Rounds
}

func NewSession(logger *slog.Logger, console *Console, rounds Rounds) *Session {
	return &Session{
		logger:  logger.With("component", "session"),
		console: console,
		rounds:  rounds,
	}
}

// Run - a closed input ends the session without an error, any other failure is returned.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for played := 1; ; played++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, err := that.rounds.PlayRound()
		if err != nil {
			if errors.Is(err, apperror.ErrInputClosed) {
				log.Info("input closed, leaving", "rounds", played-1)
				return nil
			}

			return fmt.Errorf("round %d failed: %w", played, err)
		}

		log.Debug("round played", "round", played, "outcome", outcome.String())

		if !that.console.PlayAgain() {
			log.Info("session finished", "rounds", played)
			return nil
		}
	}
}
