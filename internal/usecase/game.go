package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
)

type GameUseCase interface {
	Dispatch(ctx context.Context, event Event) (*Report, error)
	Snapshot() Snapshot
}

type gameEngine interface {
	ApplyMove(row, col int) (entity.Outcome, error)
	RequestComputerMove() (entity.Outcome, error)
	BoardFull() bool
	Reset()
	SetMode(mode entity.Mode) error

	Board() entity.Board
	Turn() entity.Mark
	Mode() entity.Mode
}

type scoreRepo interface {
	Record(outcome entity.Outcome)
	Get() repository.Score
}

// Move is a mark placed while handling an event.
type Move struct {
	Player entity.Mark
	Row    int
	Col    int
}

// Report describes what an event changed.
type Report struct {
	Moves   []Move
	Outcome entity.Outcome
}

// Snapshot is everything the UI needs to draw a frame.
type Snapshot struct {
	RoundID string
	Board   entity.Board
	Turn    entity.Mark
	Mode    entity.Mode
	Score   repository.Score

	// Pending is the finished round's result until the user acknowledges it.
	Pending *entity.Outcome
}

type gameUseCase struct {
	logger *slog.Logger

	engine    gameEngine
	scoreRepo scoreRepo

	roundID string
	pending *entity.Outcome
}

func NewGameUseCase(logger *slog.Logger, engine gameEngine, scoreRepo scoreRepo) GameUseCase {
	return &gameUseCase{
		logger:    logger.With("component", "usecase"),
		engine:    engine,
		scoreRepo: scoreRepo,
		roundID:   uuid.NewString(),
	}
}

// Dispatch - routes a UI event to its handler.
func (that *gameUseCase) Dispatch(ctx context.Context, event Event) (*Report, error) {
	log := that.logger.With("event", event.eventName(), "round", that.roundID)
	log.DebugContext(ctx, "dispatching event")

	switch ev := event.(type) {
	case CellClicked:
		return that.handleCellClicked(ctx, ev)
	case ModeSelected:
		return that.handleModeSelected(ctx, ev)
	case ResultAcknowledged:
		return that.handleResultAcknowledged(ctx)
	case ResetRequested:
		return that.handleReset(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown event %T", apperror.ErrInvalidState, event)
	}
}

func (that *gameUseCase) Snapshot() Snapshot {
	snapshot := Snapshot{
		RoundID: that.roundID,
		Board:   that.engine.Board(),
		Turn:    that.engine.Turn(),
		Mode:    that.engine.Mode(),
		Score:   that.scoreRepo.Get(),
	}

	if that.pending != nil {
		pending := *that.pending
		snapshot.Pending = &pending
	}

	return snapshot
}

func (that *gameUseCase) handleCellClicked(ctx context.Context, ev CellClicked) (*Report, error) {
	log := that.logger.With("method", "handleCellClicked", "round", that.roundID)

	if that.pending != nil {
		return nil, apperror.ErrResultPending
	}

	// the human always plays X against the computer
	if that.engine.Mode() == entity.ModeHumanVsComputer && that.engine.Turn() != entity.PlayerX {
		return nil, apperror.ErrNotYourTurn
	}

	player := that.engine.Turn()

	outcome, err := that.engine.ApplyMove(ev.Row, ev.Col)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	report := &Report{
		Moves:   []Move{{Player: player, Row: ev.Row, Col: ev.Col}},
		Outcome: outcome,
	}

	log.InfoContext(ctx, "player made a turn", "player", player, "row", ev.Row, "col", ev.Col, "result", outcome.Result)

	if outcome.Result == entity.ResultContinue && that.engine.Mode() == entity.ModeHumanVsComputer && !that.engine.BoardFull() {
		if err = that.makeComputerTurn(ctx, report); err != nil {
			return report, err
		}
	}

	if report.Outcome.IsFinished() {
		that.finishRound(ctx, report.Outcome)
	}

	return report, nil
}

func (that *gameUseCase) makeComputerTurn(ctx context.Context, report *Report) error {
	log := that.logger.With("method", "makeComputerTurn", "round", that.roundID)

	before := that.engine.Board()

	outcome, err := that.engine.RequestComputerMove()
	if err != nil {
		log.ErrorContext(ctx, "computer failed to make turn", "error", err)
		return fmt.Errorf("computer failed to make turn: %w", err)
	}

	if cell, ok := placedCell(before, that.engine.Board()); ok {
		row, col := entity.Position(cell)
		report.Moves = append(report.Moves, Move{Player: entity.PlayerO, Row: row, Col: col})
		log.InfoContext(ctx, "computer made a turn", "row", row, "col", col, "result", outcome.Result)
	}

	report.Outcome = outcome

	return nil
}

func (that *gameUseCase) handleModeSelected(ctx context.Context, ev ModeSelected) (*Report, error) {
	if err := that.engine.SetMode(ev.Mode); err != nil {
		return nil, fmt.Errorf("failed to set mode: %w", err)
	}

	that.startRound(ctx, "mode changed")

	return &Report{Outcome: entity.Continue()}, nil
}

func (that *gameUseCase) handleResultAcknowledged(ctx context.Context) (*Report, error) {
	if that.pending == nil {
		return &Report{Outcome: entity.Continue()}, nil
	}

	that.engine.Reset()
	that.startRound(ctx, "result acknowledged")

	return &Report{Outcome: entity.Continue()}, nil
}

func (that *gameUseCase) handleReset(ctx context.Context) (*Report, error) {
	that.engine.Reset()
	that.startRound(ctx, "reset requested")

	return &Report{Outcome: entity.Continue()}, nil
}

func (that *gameUseCase) finishRound(ctx context.Context, outcome entity.Outcome) {
	that.scoreRepo.Record(outcome)
	that.pending = &outcome

	that.logger.InfoContext(ctx, "Game finished", "round", that.roundID, "result", outcome.Result, "winner", outcome.Winner)
}

func (that *gameUseCase) startRound(ctx context.Context, reason string) {
	previous := that.roundID

	that.pending = nil
	that.roundID = uuid.NewString()

	that.logger.InfoContext(ctx, "new round", "reason", reason, "previous", previous, "round", that.roundID, "mode", that.engine.Mode())
}

// placedCell - finds the cell that became occupied between two boards.
func placedCell(before, after entity.Board) (int, bool) {
	for i := range before {
		if before[i] == entity.EmptyCell && after[i] != entity.EmptyCell {
			return i, true
		}
	}

	return 0, false
}
