package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTied
)

const (
	statusInProgressText = "in_progress"
	statusWonText        = "won"
	statusTiedText       = "tied"
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return statusInProgressText
	case StatusWon:
		return statusWonText
	case StatusTied:
		return statusTiedText
	default:
		return fmt.Sprintf("status(%d)", int(that))
	}
}

func (that Status) IsTerminal() bool {
	return that == StatusWon || that == StatusTied
}

func (that Status) MarshalText() ([]byte, error) {
	switch that {
	case StatusInProgress, StatusWon, StatusTied:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: unknown status %d", apperror.ErrCorruptSnapshot, int(that))
	}
}

func (that *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case statusInProgressText:
		*that = StatusInProgress
	case statusWonText:
		*that = StatusWon
	case statusTiedText:
		*that = StatusTied
	default:
		return fmt.Errorf("%w: unknown status %q", apperror.ErrCorruptSnapshot, text)
	}

	return nil
}

// Move describes an accepted drop.
type Move struct {
	Row    int
	Column int
	Player Player
	Status Status
}

// Game is the turn and termination state machine. It owns its board exclusively.
type Game struct {
	board  *Board
	active Player
	status Status
	winner Player
	moves  int
}

// NewGame - creates a game with an empty board and Player1 to move.
func NewGame(width, height int) (*Game, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		board:  board,
		active: Player1,
		status: StatusInProgress,
	}, nil
}

// DropPiece - drops the active player's piece into column. Rejected moves leave the game untouched.
func (that *Game) DropPiece(column int) (Move, error) {
	if that.status.IsTerminal() {
		return Move{}, apperror.ErrGameOver
	}

	row, err := that.board.LandingRow(column)
	if err != nil {
		return Move{}, err
	}

	if row == NoSpot {
		return Move{}, fmt.Errorf("%w: %d", apperror.ErrColumnFull, column)
	}

	player := that.active
	that.board.Occupy(row, column, player)
	that.moves++

	switch {
	case HasWinThrough(that.board, player, row, column):
		that.status = StatusWon
		that.winner = player
	case that.board.IsFull():
		that.status = StatusTied
	default:
		that.active = player.Opponent()
	}

	return Move{Row: row, Column: column, Player: player, Status: that.status}, nil
}

func (that *Game) CellAt(row, column int) (Player, error) {
	return that.board.CellAt(row, column)
}

// ActivePlayer - returns the player to move, or the player who made the last move once the game is over.
func (that *Game) ActivePlayer() Player {
	return that.active
}

func (that *Game) Status() Status {
	return that.status
}

// Winner - returns NoPlayer unless the status is StatusWon.
func (that *Game) Winner() Player {
	return that.winner
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) Width() int {
	return that.board.Width()
}

func (that *Game) Height() int {
	return that.board.Height()
}

// Board - returns a copy of the grid.
func (that *Game) Board() [][]Player {
	return that.board.Cells()
}

func (that *Game) OpenColumns() []int {
	if that.status.IsTerminal() {
		return nil
	}

	return that.board.OpenColumns()
}

// WinningLine - returns the winner's four cells, or nil when nobody has won.
func (that *Game) WinningLine() []Cell {
	if that.status != StatusWon {
		return nil
	}

	return WinningLine(that.board, that.winner)
}

func (that *Game) IsFinished() bool {
	return that.status.IsTerminal()
}
