package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

type gameUseCase interface {
	Dispatch(ctx context.Context, event usecase.Event) (*usecase.Report, error)
	Snapshot() usecase.Snapshot
}

type UI struct {
	logger *slog.Logger
	screen tcell.Screen
	game   gameUseCase
	layout layout

	// pressed tracks the button state so a held button fires once
	pressed tcell.ButtonMask

	handlers map[rune]func(ctx context.Context, snapshot usecase.Snapshot) usecase.Event
}

// New - creates a terminal UI on an already initialized screen.
func New(logger *slog.Logger, screen tcell.Screen, game gameUseCase) *UI {
	ui := &UI{
		logger: logger.With("component", "terminal"),
		screen: screen,
		game:   game,
		layout: newLayout(),

		handlers: make(map[rune]func(context.Context, usecase.Snapshot) usecase.Event),
	}

	for cell := 0; cell < entity.CellCount; cell++ {
		row, col := entity.Position(cell)
		ui.handlers[rune('1'+cell)] = func(context.Context, usecase.Snapshot) usecase.Event {
			return usecase.CellClicked{Row: row, Col: col}
		}
	}

	ui.handlers['m'] = ui.handleToggleMode
	ui.handlers['r'] = ui.handleReset

	return ui
}

// Run - draws the board and processes input until quit or ctx is done.
func (that *UI) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.screen.EnableMouse()
	defer that.screen.DisableMouse()

	stop := context.AfterFunc(ctx, func() {
		// wake up PollEvent
		if err := that.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
			log.Error("failed to interrupt event loop", "error", err)
		}
	})
	defer stop()

	that.Draw()

	for {
		event := that.screen.PollEvent()
		if event == nil {
			return nil
		}

		if quit := that.HandleEvent(ctx, event); quit {
			log.Info("event loop stopped")
			return nil
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

// Draw - renders the current game state.
func (that *UI) Draw() {
	render(that.screen, that.layout, that.game.Snapshot())
}

// HandleEvent - applies one terminal event and redraws. Returns true when the UI should stop.
func (that *UI) HandleEvent(ctx context.Context, event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventInterrupt:
		return true
	case *tcell.EventResize:
		that.screen.Sync()
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return true
		}
		that.dispatch(ctx, that.keyEvent(ctx, ev))
	case *tcell.EventMouse:
		that.dispatch(ctx, that.mouseEvent(ev))
	}

	that.Draw()

	return false
}

func (that *UI) keyEvent(ctx context.Context, ev *tcell.EventKey) usecase.Event {
	snapshot := that.game.Snapshot()

	if snapshot.Pending != nil {
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			return usecase.ResultAcknowledged{}
		}
		return nil
	}

	if ev.Key() != tcell.KeyRune {
		return nil
	}

	handler, ok := that.handlers[ev.Rune()]
	if !ok {
		return nil
	}

	return handler(ctx, snapshot)
}

func (that *UI) mouseEvent(ev *tcell.EventMouse) usecase.Event {
	buttons := ev.Buttons()
	justPressed := buttons&tcell.Button1 != 0 && that.pressed&tcell.Button1 == 0
	that.pressed = buttons

	if !justPressed {
		return nil
	}

	x, y := ev.Position()
	event, ok := that.layout.eventAt(x, y, that.game.Snapshot())
	if !ok {
		return nil
	}

	return event
}

func (that *UI) handleToggleMode(_ context.Context, snapshot usecase.Snapshot) usecase.Event {
	if snapshot.Mode == entity.ModeHumanVsComputer {
		return usecase.ModeSelected{Mode: entity.ModeHumanVsHuman}
	}
	return usecase.ModeSelected{Mode: entity.ModeHumanVsComputer}
}

func (that *UI) handleReset(context.Context, usecase.Snapshot) usecase.Event {
	return usecase.ResetRequested{}
}

func (that *UI) dispatch(ctx context.Context, event usecase.Event) {
	if event == nil {
		return
	}

	log := that.logger.With("method", "dispatch")

	report, err := that.game.Dispatch(ctx, event)
	if err != nil {
		if isExpected(err) {
			log.DebugContext(ctx, "event ignored", "event", fmt.Sprintf("%T", event), "reason", err)
			return
		}

		log.ErrorContext(ctx, "failed to handle event", "event", fmt.Sprintf("%T", event), "error", err)
		return
	}

	if report.Outcome.IsFinished() {
		log.InfoContext(ctx, "showing result", "result", report.Outcome.String())
	}
}

// isExpected - errors caused by ordinary user clicks that need no feedback.
func isExpected(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrResultPending) ||
		errors.Is(err, apperror.ErrNotYourTurn)
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	default:
		return false
	}
}
