package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type botService interface {
	ChooseCell(board entity.Board) (int, error)
}

// Engine owns the board, the active player and the game mode. It is not safe for concurrent use.
type Engine struct {
	game *entity.Game
	bot  botService
}

// NewEngine - creates an engine with an empty board, X to move, in human-vs-human mode.
func NewEngine(bot botService) *Engine {
	return &Engine{
		game: entity.NewGame(entity.ModeHumanVsHuman),
		bot:  bot,
	}
}

// ApplyMove - places the current player's mark at row/col and reports the outcome.
// The turn passes to the opponent only when the game continues.
func (that *Engine) ApplyMove(row, col int) (entity.Outcome, error) {
	cell, err := entity.Index(row, col)
	if err != nil {
		return entity.Outcome{}, err
	}

	if err = that.validateMove(cell); err != nil {
		return entity.Outcome{}, err
	}

	return that.makeTurn(cell), nil
}

// RequestComputerMove - lets the computer play O on a random empty cell.
func (that *Engine) RequestComputerMove() (entity.Outcome, error) {
	if that.game.Mode != entity.ModeHumanVsComputer {
		return entity.Outcome{}, fmt.Errorf("%w: computer does not play in %s mode", apperror.ErrInvalidState, that.game.Mode)
	}

	if that.game.Turn != entity.PlayerO {
		return entity.Outcome{}, fmt.Errorf("%w: computer plays %s, turn is %s", apperror.ErrInvalidState, entity.PlayerO, that.game.Turn)
	}

	if that.BoardFull() {
		return entity.Outcome{}, apperror.ErrNoLegalMove
	}

	if that.IsFinished() {
		return entity.Outcome{}, fmt.Errorf("%w: game is already finished", apperror.ErrInvalidState)
	}

	cell, err := that.bot.ChooseCell(that.game.Board)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("computer failed to choose a cell: %w", err)
	}

	if err = that.validateMove(cell); err != nil {
		return entity.Outcome{}, fmt.Errorf("computer chose cell %d: %w", cell, err)
	}

	return that.makeTurn(cell), nil
}

// CheckWin - reports whether player owns a complete row, column or diagonal.
func (that *Engine) CheckWin(player entity.Mark) bool {
	return that.game.Board.HasLine(player)
}

func (that *Engine) BoardFull() bool {
	return that.game.Board.IsFull()
}

// Reset - clears the board and gives the move to X. The mode is kept.
func (that *Engine) Reset() {
	that.game.Board = entity.Board{}
	that.game.Turn = entity.PlayerX
}

// SetMode - switches the mode and resets the board.
func (that *Engine) SetMode(mode entity.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	that.game.Mode = mode
	that.Reset()

	return nil
}

func (that *Engine) Cell(row, col int) (entity.Mark, error) {
	cell, err := entity.Index(row, col)
	if err != nil {
		return entity.EmptyCell, err
	}

	return that.game.Board[cell], nil
}

// Board returns a copy of the grid.
func (that *Engine) Board() entity.Board {
	return that.game.Board
}

func (that *Engine) Turn() entity.Mark {
	return that.game.Turn
}

func (that *Engine) Mode() entity.Mode {
	return that.game.Mode
}

// Result - derives the game result from the board; ResultContinue means the game is ongoing.
func (that *Engine) Result() entity.Outcome {
	return that.game.Board.DetermineGameResult()
}

func (that *Engine) IsFinished() bool {
	return that.Result().IsFinished()
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(cell int) error {
	if cell < 0 || cell >= len(that.game.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	if that.IsFinished() {
		return fmt.Errorf("%w: game is already finished", apperror.ErrInvalidState)
	}

	return nil
}

// makeTurn - places the mark and computes the outcome for the mover only.
func (that *Engine) makeTurn(cell int) entity.Outcome {
	player := that.game.Turn
	that.game.Board[cell] = player

	switch {
	case that.CheckWin(player):
		return entity.Win(player)
	case that.BoardFull():
		return entity.Draw()
	default:
		that.game.Turn = entity.Opponent(player)
		return entity.Continue()
	}
}
