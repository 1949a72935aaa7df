package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

// Mark is the content of a single cell. PlayerX and PlayerO double as the players.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

type Mode string

const (
	ModeHumanVsHuman    Mode = "human"
	ModeHumanVsComputer Mode = "computer"
)

type Result string

const (
	ResultContinue Result = "continue"
	ResultWin      Result = "win"
	ResultDraw     Result = "draw"
)

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid stored row-major.
type Board [CellCount]Mark

// Outcome - result of a move, or the derived state of a board. Winner is set only for ResultWin.
type Outcome struct {
	Result Result `json:"result"`
	Winner Mark   `json:"winner,omitempty"`
}

func Continue() Outcome {
	return Outcome{Result: ResultContinue}
}

func Win(player Mark) Outcome {
	return Outcome{Result: ResultWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Result: ResultDraw}
}

func (that Outcome) IsFinished() bool {
	return that.Result == ResultWin || that.Result == ResultDraw
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultWin:
		return fmt.Sprintf("%s wins!", that.Winner)
	case ResultDraw:
		return "It's a draw!"
	default:
		return "ongoing"
	}
}

// Index - converts a row/column pair into a board index.
func Index(row, col int) (int, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	return row*BoardSize + col, nil
}

// Position - converts a board index back into a row/column pair.
func Position(cell int) (int, int) {
	return cell / BoardSize, cell % BoardSize
}

// HasLine - reports whether any row, column or diagonal is filled with player's mark.
func (that *Board) HasLine(player Mark) bool {
	if player == EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == player && that[combo[1]] == player && that[combo[2]] == player {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - returns indices of empty cells in row-major order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// DetermineGameResult - derives the game result from the board contents.
func (that *Board) DetermineGameResult() Outcome {
	for _, player := range []Mark{PlayerX, PlayerO} {
		if that.HasLine(player) {
			return Win(player)
		}
	}

	// the game will continue until all the squares are full
	if !that.IsFull() {
		return Continue()
	}

	return Draw()
}

func Opponent(player Mark) Mark {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(value); mode {
	case ModeHumanVsHuman, ModeHumanVsComputer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMode, value)
	}
}

func (that Mode) IsValid() bool {
	return that == ModeHumanVsHuman || that == ModeHumanVsComputer
}

// Label - human readable name of the mode used by the mode selectors.
func (that Mode) Label() string {
	if that == ModeHumanVsComputer {
		return "Vs Computer"
	}
	return "2 Players"
}

// Game holds the mutable state owned by the engine.
type Game struct {
	Board Board `json:"board"`
	Turn  Mark  `json:"player_turn"`
	Mode  Mode  `json:"mode"`
}

func NewGame(mode Mode) *Game {
	return &Game{
		Turn: PlayerX,
		Mode: mode,
	}
}
