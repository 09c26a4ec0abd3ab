package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/xo-engine/internal/apperror"
)

// StrategyKind names one of the move selection policies.
type StrategyKind string

const (
	StrategyHuman     StrategyKind = "human"
	StrategyRandom    StrategyKind = "random"
	StrategyHeuristic StrategyKind = "heuristic"
	StrategySearch    StrategyKind = "search"
)

// ParseStrategyKind - accepts the full names plus the one-letter keys of the console menu
// (u: user, r: random, a: average, g: good).
func ParseStrategyKind(value string) (StrategyKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "human", "user", "u":
		return StrategyHuman, nil
	case "random", "r":
		return StrategyRandom, nil
	case "heuristic", "average", "a":
		return StrategyHeuristic, nil
	case "search", "minimax", "good", "g":
		return StrategySearch, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, value)
	}
}

// Player binds a side to the strategy kind driving it for one game.
type Player struct {
	Mark     Side
	Strategy StrategyKind
}
