package terminal

import (
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const (
	originX = 2
	originY = 1

	cellWidth  = 7
	cellHeight = 3
	cellGap    = 1

	selectorGap = 3
)

var selectorModes = [2]entity.Mode{entity.ModeHumanVsHuman, entity.ModeHumanVsComputer}

type rect struct {
	x, y, w, h int
}

func (that rect) contains(x, y int) bool {
	return x >= that.x && x < that.x+that.w && y >= that.y && y < that.y+that.h
}

// layout - fixed screen geometry of every clickable element.
type layout struct {
	title     rect
	selectors [2]rect
	cells     [entity.CellCount]rect
	status    rect
	score     rect
	help      rect
	modal     rect
}

func newLayout() layout {
	var l layout

	l.title = rect{x: originX, y: originY, w: len(title), h: 1}

	selectorY := originY + 2
	x := originX
	for i, mode := range selectorModes {
		width := len([]rune(selectorLabel(mode, false)))
		l.selectors[i] = rect{x: x, y: selectorY, w: width, h: 1}
		x += width + selectorGap
	}

	gridY := selectorY + 2
	for cell := range l.cells {
		row, col := entity.Position(cell)
		l.cells[cell] = rect{
			x: originX + col*(cellWidth+cellGap),
			y: gridY + row*cellHeight,
			w: cellWidth,
			h: cellHeight,
		}
	}

	gridWidth := entity.BoardSize*cellWidth + (entity.BoardSize-1)*cellGap
	belowGrid := gridY + entity.BoardSize*cellHeight + 1

	l.status = rect{x: originX, y: belowGrid, w: gridWidth, h: 1}
	l.score = rect{x: originX, y: belowGrid + 1, w: gridWidth, h: 1}
	l.help = rect{x: originX, y: belowGrid + 3, w: len(helpText), h: 1}

	l.modal = rect{x: originX + 1, y: gridY + 2, w: gridWidth - 2, h: 5}

	return l
}

// eventAt - translates a click at x, y into a game event.
func (that layout) eventAt(x, y int, snapshot usecase.Snapshot) (usecase.Event, bool) {
	// the modal swallows every click while a result is shown
	if snapshot.Pending != nil {
		if that.modal.contains(x, y) {
			return usecase.ResultAcknowledged{}, true
		}
		return nil, false
	}

	for i, selector := range that.selectors {
		if selector.contains(x, y) && selectorModes[i] != snapshot.Mode {
			return usecase.ModeSelected{Mode: selectorModes[i]}, true
		}
	}

	for cell, area := range that.cells {
		if area.contains(x, y) {
			row, col := entity.Position(cell)
			return usecase.CellClicked{Row: row, Col: col}, true
		}
	}

	return nil, false
}

func selectorLabel(mode entity.Mode, selected bool) string {
	if selected {
		return "(•) " + mode.Label()
	}
	return "( ) " + mode.Label()
}
