package terminal

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const (
	title    = "Tic-Tac-Toe"
	okButton = "[ OK ]"
	helpText = "1-9 place  m mode  r reset  q quit"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleModal    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleButton   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorNavy).Bold(true)

	markStyles = map[entity.Mark]tcell.Style{
		entity.PlayerX: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		entity.PlayerO: tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	}
)

// render - draws a full frame for the snapshot.
func render(screen tcell.Screen, l layout, snapshot usecase.Snapshot) {
	screen.Clear()

	drawText(screen, l.title.x, l.title.y, styleTitle, title)

	for i, mode := range selectorModes {
		selected := mode == snapshot.Mode
		style := styleDefault
		if selected {
			style = styleSelected
		}
		drawText(screen, l.selectors[i].x, l.selectors[i].y, style, selectorLabel(mode, selected))
	}

	for cell, area := range l.cells {
		drawBox(screen, area, styleBorder)

		centerX, centerY := area.x+area.w/2, area.y+area.h/2
		if mark := snapshot.Board[cell]; mark != entity.EmptyCell {
			drawText(screen, centerX, centerY, markStyles[mark], string(mark))
		} else {
			drawText(screen, centerX, centerY, styleHint, strconv.Itoa(cell+1))
		}
	}

	drawText(screen, l.status.x, l.status.y, styleDefault, statusLine(snapshot))
	drawText(screen, l.score.x, l.score.y, styleDefault, scoreLine(snapshot))
	drawText(screen, l.help.x, l.help.y, styleHint, helpText)

	if snapshot.Pending != nil {
		drawModal(screen, l.modal, snapshot.Pending.String())
	}

	screen.Show()
}

func statusLine(snapshot usecase.Snapshot) string {
	if snapshot.Pending != nil {
		return "Game over: " + snapshot.Pending.String()
	}

	if snapshot.Mode == entity.ModeHumanVsComputer && snapshot.Turn == entity.PlayerX {
		return fmt.Sprintf("Turn: %s (you)", snapshot.Turn)
	}

	return fmt.Sprintf("Turn: %s", snapshot.Turn)
}

func scoreLine(snapshot usecase.Snapshot) string {
	return fmt.Sprintf("X: %d   O: %d   Draws: %d", snapshot.Score.XWins, snapshot.Score.OWins, snapshot.Score.Draws)
}

func drawModal(screen tcell.Screen, area rect, message string) {
	for y := area.y; y < area.y+area.h; y++ {
		for x := area.x; x < area.x+area.w; x++ {
			screen.SetContent(x, y, ' ', nil, styleModal)
		}
	}

	drawBox(screen, area, styleModal)
	drawCentered(screen, area, area.y+1, styleModal, message)
	drawCentered(screen, area, area.y+3, styleButton, okButton)
}

func drawCentered(screen tcell.Screen, area rect, y int, style tcell.Style, text string) {
	width := len([]rune(text))
	drawText(screen, area.x+(area.w-width)/2, y, style, text)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawBox(screen tcell.Screen, area rect, style tcell.Style) {
	right, bottom := area.x+area.w-1, area.y+area.h-1

	for x := area.x + 1; x < right; x++ {
		screen.SetContent(x, area.y, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}

	for y := area.y + 1; y < bottom; y++ {
		screen.SetContent(area.x, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}

	screen.SetContent(area.x, area.y, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, area.y, tcell.RuneURCorner, nil, style)
	screen.SetContent(area.x, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
