package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
	"github.com/rocketscienceinc/xo-engine/internal/entity"
)

const (
	ModePlay  = "play"
	ModeArena = "arena"

	// SearchCostLimit is the number of lines above which the first search move stops being
	// interactive.
	SearchCostLimit = 10_000_000
)

var (
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidDepthCap = errors.New("search depth cap must be positive")
	ErrHumanInArena    = errors.New("arena mode needs two computer players")
	ErrInvalidArena    = errors.New("arena needs at least one game and one worker")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"XO_LOG_LEVEL" env-default:"info"`
	Mode     string  `yaml:"mode" env:"XO_MODE" env-default:"play"`
	Seed     uint64  `yaml:"seed" env:"XO_SEED" env-default:"0"`
	Board    Board   `yaml:"board"`
	Search   Search  `yaml:"search"`
	Players  Players `yaml:"players"`
	Arena    Arena   `yaml:"arena"`
}

type Board struct {
	Size int `yaml:"size" env:"XO_BOARD_SIZE" env-default:"3"`
}

// Search - the depth cap is exact for 3x3 boards only, larger boards are truncated.
type Search struct {
	DepthCap int `yaml:"depth-cap" env:"XO_SEARCH_DEPTH_CAP" env-default:"9"`
}

// Players - an empty value means the player is chosen interactively at startup.
type Players struct {
	X string `yaml:"x" env:"XO_PLAYER_X" env-default:""`
	O string `yaml:"o" env:"XO_PLAYER_O" env-default:""`
}

type Arena struct {
	Games   int `yaml:"games" env:"XO_ARENA_GAMES" env-default:"1000"`
	Workers int `yaml:"workers" env:"XO_ARENA_WORKERS" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the file, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Board.Size < 3 {
		return fmt.Errorf("%w: %d, need at least 3", apperror.ErrInvalidBoardSize, that.Board.Size)
	}

	if that.Search.DepthCap < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDepthCap, that.Search.DepthCap)
	}

	for _, value := range []string{that.Players.X, that.Players.O} {
		if value == "" {
			continue
		}

		if _, err := entity.ParseStrategyKind(value); err != nil {
			return err
		}
	}

	switch strings.ToLower(that.Mode) {
	case ModePlay:
		return nil
	case ModeArena:
		return that.validateArena()
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, that.Mode)
	}
}

func (that *Config) validateArena() error {
	if that.Arena.Games < 1 || that.Arena.Workers < 1 {
		return ErrInvalidArena
	}

	for _, value := range []string{that.Players.X, that.Players.O} {
		kind, err := entity.ParseStrategyKind(value)
		if err != nil || kind == entity.StrategyHuman {
			return fmt.Errorf("%w: got %q", ErrHumanInArena, value)
		}
	}

	return nil
}

// IsArena - reports whether the arena mode is selected.
func (that *Config) IsArena() bool {
	return strings.EqualFold(that.Mode, ModeArena)
}

// SearchCost - upper bound of the lines the search explores for the first move of a round:
// cells * (cells-1) * ... over depth-cap plies, saturating at SearchCostLimit+1.
func (that *Config) SearchCost() int {
	cells := that.Board.Size * that.Board.Size
	cost := 1

	for ply := 0; ply < that.Search.DepthCap && ply < cells; ply++ {
		cost *= cells - ply
		if cost > SearchCostLimit {
			return SearchCostLimit + 1
		}
	}

	return cost
}

// SearchTooSlow - reports whether the configured depth cap makes the search impractical on
// the configured board. The classic board is always fine.
func (that *Config) SearchTooSlow() bool {
	return that.SearchCost() > SearchCostLimit
}
