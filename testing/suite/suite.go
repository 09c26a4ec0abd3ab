package suite

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/xo-engine/internal/entity"
	"github.com/rocketscienceinc/xo-engine/internal/random"
)

const (
	maxWaitDuration = 120 * time.Second
	defaultSeed     = 20221017
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rand *frand.RNG
}

// New - test fixture with a silent logger and a reproducible generator.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   random.New(defaultSeed),
	}
}

// Script is a line source that replays fixed answers and then reports io.EOF.
type Script struct {
	mu    sync.Mutex
	lines []string
	read  int
}

func Lines(lines ...string) *Script {
	return &Script{lines: lines}
}

func (that *Script) ReadLine() (string, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.read >= len(that.lines) {
		return "", io.EOF
	}

	line := that.lines[that.read]
	that.read++

	return line, nil
}

// Read - number of lines consumed so far.
func (that *Script) Read() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.read
}

// Prompts records what a human player was told.
type Prompts struct {
	mu       sync.Mutex
	Prompted []entity.Side
	Rejected []error
}

func (that *Prompts) Prompt(side entity.Side) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.Prompted = append(that.Prompted, side)
}

func (that *Prompts) Reject(_ entity.Side, reason error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.Rejected = append(that.Rejected, reason)
}
