package usecase

import "github.com/rocketscienceinc/tictactoe-local/internal/entity"

// Event is a user action coming from the UI.
type Event interface {
	eventName() string
}

type CellClicked struct {
	Row int
	Col int
}

type ModeSelected struct {
	Mode entity.Mode
}

// ResultAcknowledged - the user closed the game over notification.
type ResultAcknowledged struct{}

type ResetRequested struct{}

func (CellClicked) eventName() string        { return "cell:clicked" }
func (ModeSelected) eventName() string       { return "mode:selected" }
func (ResultAcknowledged) eventName() string { return "result:acknowledged" }
func (ResetRequested) eventName() string     { return "game:reset" }
