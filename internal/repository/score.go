package repository

import "github.com/rocketscienceinc/tictactoe-local/internal/entity"

// Score is the session tally of finished rounds.
type Score struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

type ScoreRepository interface {
	Record(outcome entity.Outcome)
	Get() Score
	Clear()
}

// memoryScore keeps the tally for the lifetime of the process only.
type memoryScore struct {
	score Score
}

func NewScoreRepository() ScoreRepository {
	return &memoryScore{}
}

// Record - counts a finished round. Continue outcomes are ignored.
func (that *memoryScore) Record(outcome entity.Outcome) {
	switch {
	case outcome.Result == entity.ResultDraw:
		that.score.Draws++
	case outcome.Result == entity.ResultWin && outcome.Winner == entity.PlayerX:
		that.score.XWins++
	case outcome.Result == entity.ResultWin && outcome.Winner == entity.PlayerO:
		that.score.OWins++
	}
}

func (that *memoryScore) Get() Score {
	return that.score
}

func (that *memoryScore) Clear() {
	that.score = Score{}
}
