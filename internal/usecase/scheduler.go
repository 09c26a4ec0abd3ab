package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/random"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
)

var ErrRoundNotStarted = errors.New("round is not started")

type Strategy interface {
	Choose(board *tictactoe.Board, side entity.Side) (entity.Position, error)
}

// Observer receives what a front end needs to display. RoundStarted and Placed get the live
// board, which must not be kept or modified.
type Observer interface {
	RoundStarted(board *tictactoe.Board, first entity.Side)
	Placed(board *tictactoe.Board, side entity.Side, pos entity.Position)
	RoundFinished(outcome entity.State, tally entity.Tally)
}

// Phase of the scheduler state machine.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseAwaitingMove
	PhaseTerminal
)

// Scheduler alternates two strategies on one board until the round reaches a terminal state
// and keeps the session counters.
type Scheduler struct {
	logger *slog.Logger

	board      *tictactoe.Board
	strategies map[entity.Side]Strategy
	rng        random.Source
	observer   Observer

	phase   Phase
	active  entity.Side
	outcome entity.State
	moves   int
	tally   entity.Tally
}

func NewScheduler(logger *slog.Logger, board *tictactoe.Board, strategyA, strategyB Strategy, rng random.Source, observer Observer) *Scheduler {
	if observer == nil {
		observer = nopObserver{}
	}

	return &Scheduler{
		logger: logger.With("component", "scheduler"),
		board:  board,
		strategies: map[entity.Side]Strategy{
			entity.SideA: strategyA,
			entity.SideB: strategyB,
		},
		rng:      rng,
		observer: observer,
	}
}

// Start - clears the board and picks the starting side at random.
func (that *Scheduler) Start() entity.Side {
	that.board.Reset()

	that.active = random.Side(that.rng)
	that.phase = PhaseAwaitingMove
	that.outcome = entity.StateIncomplete
	that.moves = 0

	that.logger.Info("round started", "first", that.active.String(), "size", that.board.Size())
	that.observer.RoundStarted(that.board, that.active)

	return that.active
}

// Step - lets the active side move once and returns the resulting state.
// A terminal state closes the round: the tally is updated and the board is reset.
func (that *Scheduler) Step() (entity.State, error) {
	log := that.logger.With("method", "Step")

	if that.phase != PhaseAwaitingMove {
		return that.outcome, ErrRoundNotStarted
	}

	side := that.active

	pos, err := that.strategies[side].Choose(that.board, side)
	if err != nil {
		return entity.StateIncomplete, fmt.Errorf("side %s failed to choose a cell: %w", side, err)
	}

	if err = that.board.Place(pos, side); err != nil {
		return entity.StateIncomplete, fmt.Errorf("side %s failed to make turn: %w", side, err)
	}

	that.moves++
	log.Debug("cell taken", "side", side.String(), "cell", that.board.PositionLabel(pos), "move", that.moves)
	that.observer.Placed(that.board, side, pos)

	state := that.board.State()
	if state.IsTerminal() {
		that.finish(state)
		return state, nil
	}

	that.active = side.Opponent()

	return state, nil
}

// PlayRound - plays a full round and returns its outcome.
func (that *Scheduler) PlayRound() (entity.State, error) {
	that.Start()

	for {
		state, err := that.Step()
		if err != nil {
			that.phase = PhaseIdle
			return entity.StateIncomplete, fmt.Errorf("round aborted: %w", err)
		}

		if state.IsTerminal() {
			return state, nil
		}
	}
}

func (that *Scheduler) finish(outcome entity.State) {
	that.phase = PhaseTerminal
	that.outcome = outcome
	that.tally.Record(outcome)

	that.logger.Info("round finished",
		"outcome", outcome.String(),
		"moves", that.moves,
		"wins_x", that.tally.WinsA,
		"wins_o", that.tally.WinsB,
		"draws", that.tally.Draws,
	)
	that.observer.RoundFinished(outcome, that.tally)

	that.board.Reset()
}

func (that *Scheduler) Phase() Phase {
	return that.phase
}

// Active - side to move while a round is running.
func (that *Scheduler) Active() entity.Side {
	return that.active
}

// Outcome - result of the last finished round.
func (that *Scheduler) Outcome() entity.State {
	return that.outcome
}

func (that *Scheduler) Tally() entity.Tally {
	return that.tally
}

func (that *Scheduler) ResetTally() {
	that.tally = entity.Tally{}
}

func (that *Scheduler) Board() *tictactoe.Board {
	return that.board
}

type nopObserver struct{}

func (nopObserver) RoundStarted(*tictactoe.Board, entity.Side) {}
func (nopObserver) Placed(*tictactoe.Board, entity.Side, entity.Position) {}
func (nopObserver) RoundFinished(entity.State, entity.Tally) {}
