package service

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type BotService interface {
	ChooseCell(board entity.Board) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - creates a computer player that picks uniformly among empty cells.
func NewBotService(seed uint64) BotService {
	return &botService{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint: gosec // it's ok
	}
}

func (that *botService) ChooseCell(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoLegalMove
	}

	return availableCells[that.rnd.IntN(len(availableCells))], nil
}
