package apperror

import "errors"

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidState = errors.New("invalid game state")
	ErrNoLegalMove  = errors.New("no legal move left")
	ErrInvalidMode  = errors.New("unknown game mode")

	ErrResultPending = errors.New("game result is not acknowledged yet")
	ErrNotYourTurn   = errors.New("it's not your turn")
)
