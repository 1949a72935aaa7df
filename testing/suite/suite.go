package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/service"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

const (
	maxWaitDuration = 10 * time.Second
	defaultSeed     = 1
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Engine *tictactoe.Engine
	Scores repository.ScoreRepository
}

type options struct {
	seed  uint64
	cells []int
}

type Option func(*options)

// WithSeed - seeds the random computer player.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithComputerCells - replaces the random computer player with one that plays the given cells in order.
func WithComputerCells(cells ...int) Option {
	return func(o *options) {
		o.cells = cells
	}
}

func New(t *testing.T, opts ...Option) (context.Context, *Suite) {
	t.Helper()

	conf := options{seed: defaultSeed}
	for _, opt := range opts {
		opt(&conf)
	}

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var engine *tictactoe.Engine
	if conf.cells != nil {
		engine = tictactoe.NewEngine(&scriptedBot{cells: conf.cells})
	} else {
		engine = tictactoe.NewEngine(service.NewBotService(conf.seed))
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Engine: engine,
		Scores: repository.NewScoreRepository(),
	}
}

// Play - applies moves given as board indices and fails the test on any error.
func (that *Suite) Play(cells ...int) entity.Outcome {
	that.Helper()

	var outcome entity.Outcome
	for _, cell := range cells {
		row, col := entity.Position(cell)

		var err error
		if outcome, err = that.Engine.ApplyMove(row, col); err != nil {
			that.Fatalf("could not play cell %d: %v", cell, err)
		}
	}

	return outcome
}

type scriptedBot struct {
	cells []int
}

func (that *scriptedBot) ChooseCell(entity.Board) (int, error) {
	if len(that.cells) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	cell := that.cells[0]
	that.cells = that.cells[1:]

	return cell, nil
}
