package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/config"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/random"
	"github.com/rocketscienceinc/xo-engine/internal/service"
	"github.com/rocketscienceinc/xo-engine/internal/tictactoe"
	"github.com/rocketscienceinc/xo-engine/internal/transport/console"
	"github.com/rocketscienceinc/xo-engine/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.SearchTooSlow() {
		log.Warn("search depth cap is too deep for this board, search moves may take very long",
			"size", conf.Board.Size, "depth_cap", conf.Search.DepthCap, "lines", conf.SearchCost())
	}

	term := console.New(os.Stdin, os.Stdout)

	errCh := make(chan error, 1)
	go func() {
		if conf.IsArena() {
			errCh <- runArena(ctx, logger, conf, term)
			return
		}

		errCh <- runConsole(ctx, logger, conf, term)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			term.Failure(err)
		}
		return err
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, term *console.Console) error {
	players, err := resolvePlayers(conf, term)
	if err != nil {
		if errors.Is(err, apperror.ErrInputClosed) {
			return nil
		}
		return err
	}

	rng := random.New(conf.Seed)

	strategies := make([]usecase.Strategy, len(players))
	for i, player := range players {
		strategy, err := service.New(player.Strategy, service.Options{
			Logger:   logger,
			Rand:     rng,
			DepthCap: conf.Search.DepthCap,
			Input:    term,
			Prompter: term,
		})
		if err != nil {
			return fmt.Errorf("could not build player %s: %w", player.Mark, err)
		}

		if player.Strategy == entity.StrategySearch {
			strategy = term.Announce(strategy)
		}

		strategies[i] = strategy
	}

	board, err := tictactoe.NewBoard(conf.Board.Size)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	scheduler := usecase.NewScheduler(logger, board, strategies[0], strategies[1], rng, term.Observer())

	return console.NewSession(logger, term, scheduler).Run(ctx)
}

// resolvePlayers - configured strategies are used as is, missing ones are asked for.
func resolvePlayers(conf *config.Config, term *console.Console) ([]entity.Player, error) {
	configured := map[entity.Side]string{
		entity.SideA: conf.Players.X,
		entity.SideB: conf.Players.O,
	}

	players := make([]entity.Player, 0, len(entity.Sides))
	for _, side := range entity.Sides {
		var (
			kind entity.StrategyKind
			err  error
		)

		if value := configured[side]; value != "" {
			kind, err = entity.ParseStrategyKind(value)
		} else {
			kind, err = term.ChoosePlayer(side)
		}

		if err != nil {
			return nil, err
		}

		players = append(players, entity.Player{Mark: side, Strategy: kind})
	}

	return players, nil
}

func runArena(ctx context.Context, logger *slog.Logger, conf *config.Config, term *console.Console) error {
	kindX, err := entity.ParseStrategyKind(conf.Players.X)
	if err != nil {
		return err
	}

	kindO, err := entity.ParseStrategyKind(conf.Players.O)
	if err != nil {
		return err
	}

	factory := func(rng random.Source) (usecase.Strategy, usecase.Strategy, error) {
		opts := service.Options{Logger: logger, Rand: rng, DepthCap: conf.Search.DepthCap}

		strategyX, err := service.New(kindX, opts)
		if err != nil {
			return nil, nil, err
		}

		strategyO, err := service.New(kindO, opts)
		if err != nil {
			return nil, nil, err
		}

		return strategyX, strategyO, nil
	}

	arena := usecase.NewArena(logger, conf.Arena.Games, conf.Arena.Workers, conf.Seed, conf.Board.Size, factory)

	tally, err := arena.Run(ctx)
	if err != nil {
		return err
	}

	term.ShowTally(tally)

	return nil
}
