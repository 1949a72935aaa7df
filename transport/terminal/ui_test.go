package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/testing/suite"
)

type testUI struct {
	*UI
	screen tcell.SimulationScreen
	game   usecase.GameUseCase
}

func newTestUI(t *testing.T, opts ...suite.Option) (context.Context, *testUI) {
	t.Helper()

	ctx, st := suite.New(t, opts...)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 24)

	game := usecase.NewGameUseCase(st.Logger, st.Engine, st.Scores)
	ui := New(st.Logger, screen, game)
	ui.Draw()

	return ctx, &testUI{UI: ui, screen: screen, game: game}
}

func (that *testUI) key(ctx context.Context, r rune) bool {
	return that.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

// click - presses and releases the left button at x, y.
func (that *testUI) click(ctx context.Context, x, y int) {
	that.HandleEvent(ctx, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	that.HandleEvent(ctx, tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func (that *testUI) row(y int) string {
	cells, width, _ := that.screen.GetContents()

	var builder strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			builder.WriteRune(' ')
			continue
		}
		builder.WriteRune(runes[0])
	}

	return builder.String()
}

func (that *testUI) runeAt(x, y int) rune {
	cells, width, _ := that.screen.GetContents()

	runes := cells[y*width+x].Runes
	if len(runes) == 0 {
		return ' '
	}

	return runes[0]
}

func cellCenter(l layout, cell int) (int, int) {
	area := l.cells[cell]
	return area.x + area.w/2, area.y + area.h/2
}

func TestUI_Draw(t *testing.T) {
	// Given: a fresh game
	_, ui := newTestUI(t)

	// Then: the header, selectors, hints and status are drawn
	assert.Contains(t, ui.row(ui.layout.title.y), "Tic-Tac-Toe")
	assert.Contains(t, ui.row(ui.layout.selectors[0].y), "(•) 2 Players   ( ) Vs Computer")

	for cell := 0; cell < entity.CellCount; cell++ {
		x, y := cellCenter(ui.layout, cell)
		assert.Equal(t, rune('1'+cell), ui.runeAt(x, y), "cell %d", cell)
	}

	area := ui.layout.cells[0]
	assert.Equal(t, tcell.RuneULCorner, ui.runeAt(area.x, area.y))
	assert.Equal(t, tcell.RuneLRCorner, ui.runeAt(area.x+area.w-1, area.y+area.h-1))

	assert.Contains(t, ui.row(ui.layout.status.y), "Turn: X")
	assert.Contains(t, ui.row(ui.layout.score.y), "X: 0   O: 0   Draws: 0")
}

func TestUI_Keys(t *testing.T) {
	t.Run("Digits place marks row-major", func(t *testing.T) {
		ctx, ui := newTestUI(t)

		// When: keys 5 and 9 are pressed
		ui.key(ctx, '5')
		ui.key(ctx, '9')

		// Then: X is in the center and O in the bottom right corner
		x, y := cellCenter(ui.layout, 4)
		assert.Equal(t, 'X', ui.runeAt(x, y))
		x, y = cellCenter(ui.layout, 8)
		assert.Equal(t, 'O', ui.runeAt(x, y))
		assert.Contains(t, ui.row(ui.layout.status.y), "Turn: X")
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		ctx, ui := newTestUI(t)
		ui.key(ctx, '1')

		ui.key(ctx, '1')

		snapshot := ui.game.Snapshot()
		assert.Equal(t, entity.PlayerX, snapshot.Board[0])
		assert.Equal(t, entity.PlayerO, snapshot.Turn)
	})

	t.Run("m toggles the mode and r resets", func(t *testing.T) {
		ctx, ui := newTestUI(t, suite.WithComputerCells(0))

		ui.key(ctx, 'm')
		assert.Contains(t, ui.row(ui.layout.selectors[0].y), "( ) 2 Players   (•) Vs Computer")

		ui.key(ctx, '5')
		snapshot := ui.game.Snapshot()
		assert.Equal(t, entity.PlayerX, snapshot.Board[4])
		assert.Equal(t, entity.PlayerO, snapshot.Board[0])

		ui.key(ctx, 'r')
		assert.Equal(t, entity.Board{}, ui.game.Snapshot().Board)
		assert.Equal(t, entity.ModeHumanVsComputer, ui.game.Snapshot().Mode)
	})

	t.Run("Quit keys", func(t *testing.T) {
		ctx, ui := newTestUI(t)

		assert.True(t, ui.key(ctx, 'q'))
		assert.True(t, ui.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
		assert.True(t, ui.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
		assert.False(t, ui.key(ctx, 'x'))
	})
}

func TestUI_GameOverModal(t *testing.T) {
	// Given: X completes the top row
	ctx, ui := newTestUI(t)
	for _, r := range "14253" {
		ui.key(ctx, r)
	}

	// Then: the modal shows the winner over the board
	modal := ui.layout.modal
	assert.Contains(t, ui.row(modal.y+1), "X wins!")
	assert.Contains(t, ui.row(modal.y+3), "[ OK ]")
	assert.Contains(t, ui.row(ui.layout.score.y), "X: 1   O: 0   Draws: 0")

	// When: other keys and clicks outside the modal are used
	ui.key(ctx, 'r')
	ui.key(ctx, '9')
	ui.click(ctx, ui.layout.selectors[1].x, ui.layout.selectors[1].y)

	// Then: nothing changes
	snapshot := ui.game.Snapshot()
	require.NotNil(t, snapshot.Pending)
	assert.Equal(t, entity.EmptyCell, snapshot.Board[8])
	assert.Equal(t, entity.ModeHumanVsHuman, snapshot.Mode)

	// When: the result is acknowledged with Enter
	ui.HandleEvent(ctx, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	// Then: the board is cleared and the score kept
	snapshot = ui.game.Snapshot()
	assert.Nil(t, snapshot.Pending)
	assert.Equal(t, entity.Board{}, snapshot.Board)
	assert.Equal(t, repository.Score{XWins: 1}, snapshot.Score)
	assert.NotContains(t, ui.row(modal.y+1), "X wins!")
}

func TestUI_Mouse(t *testing.T) {
	t.Run("Clicking cells places marks", func(t *testing.T) {
		ctx, ui := newTestUI(t)

		x, y := cellCenter(ui.layout, 0)
		ui.click(ctx, x, y)
		area := ui.layout.cells[1]
		ui.click(ctx, area.x, area.y)

		snapshot := ui.game.Snapshot()
		assert.Equal(t, entity.PlayerX, snapshot.Board[0])
		assert.Equal(t, entity.PlayerO, snapshot.Board[1])
	})

	t.Run("Held button fires once", func(t *testing.T) {
		ctx, ui := newTestUI(t)

		x, y := cellCenter(ui.layout, 0)
		ui.HandleEvent(ctx, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		x, y = cellCenter(ui.layout, 1)
		ui.HandleEvent(ctx, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))

		snapshot := ui.game.Snapshot()
		assert.Equal(t, entity.PlayerX, snapshot.Board[0])
		assert.Equal(t, entity.EmptyCell, snapshot.Board[1])
	})

	t.Run("Clicking a selector switches the mode", func(t *testing.T) {
		ctx, ui := newTestUI(t)
		ui.key(ctx, '1')

		selector := ui.layout.selectors[1]
		ui.click(ctx, selector.x+selector.w-1, selector.y)

		snapshot := ui.game.Snapshot()
		assert.Equal(t, entity.ModeHumanVsComputer, snapshot.Mode)
		assert.Equal(t, entity.Board{}, snapshot.Board)
	})

	t.Run("Clicking inside the modal acknowledges the result", func(t *testing.T) {
		ctx, ui := newTestUI(t)
		for _, r := range "14253" {
			ui.key(ctx, r)
		}

		modal := ui.layout.modal
		ui.click(ctx, modal.x+1, modal.y+1)

		assert.Nil(t, ui.game.Snapshot().Pending)
	})

	t.Run("Gaps between cells are not clickable", func(t *testing.T) {
		ctx, ui := newTestUI(t)

		area := ui.layout.cells[0]
		ui.click(ctx, area.x+area.w, area.y+1)

		assert.Equal(t, entity.Board{}, ui.game.Snapshot().Board)
	})
}

func TestUI_Run(t *testing.T) {
	t.Run("Stops on quit key", func(t *testing.T) {
		ctx, ui := newTestUI(t)
		ui.screen.InjectKey(tcell.KeyRune, '5', tcell.ModNone)
		ui.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		require.NoError(t, ui.Run(ctx))

		assert.Equal(t, entity.PlayerX, ui.game.Snapshot().Board[4])
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		ctx, ui := newTestUI(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		require.NoError(t, ui.Run(ctx))
	})
}
