package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

// Snapshot is a serialisable copy of a game.
type Snapshot struct {
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Cells        [][]Player `json:"cells"`
	ActivePlayer Player     `json:"active_player"`
	Status       Status     `json:"status"`
	Winner       Player     `json:"winner,omitempty"`
	Moves        int        `json:"moves"`
}

func (that *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:        that.board.Width(),
		Height:       that.board.Height(),
		Cells:        that.board.Cells(),
		ActivePlayer: that.active,
		Status:       that.status,
		Winner:       that.winner,
		Moves:        that.moves,
	}
}

// Restore - rebuilds a game from a snapshot, rejecting anything a sequence of drops could not produce.
func Restore(snapshot Snapshot) (*Game, error) {
	board, err := NewBoard(snapshot.Width, snapshot.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptSnapshot, err)
	}

	if err = fillBoard(board, snapshot.Cells); err != nil {
		return nil, err
	}

	if snapshot.Moves != board.OccupiedCount() {
		return nil, fmt.Errorf("%w: %d moves but %d occupied cells", apperror.ErrCorruptSnapshot, snapshot.Moves, board.OccupiedCount())
	}

	if !snapshot.ActivePlayer.IsValid() {
		return nil, fmt.Errorf("%w: invalid active player %d", apperror.ErrCorruptSnapshot, snapshot.ActivePlayer)
	}

	if err = validateOutcome(board, snapshot); err != nil {
		return nil, err
	}

	if err = validateTurn(board, snapshot); err != nil {
		return nil, err
	}

	return &Game{
		board:  board,
		active: snapshot.ActivePlayer,
		status: snapshot.Status,
		winner: snapshot.Winner,
		moves:  snapshot.Moves,
	}, nil
}

func fillBoard(board *Board, cells [][]Player) error {
	if len(cells) != board.Height() {
		return fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrCorruptSnapshot, board.Height(), len(cells))
	}

	for row, line := range cells {
		if len(line) != board.Width() {
			return fmt.Errorf("%w: row %d has %d cells", apperror.ErrCorruptSnapshot, row, len(line))
		}

		for column, cell := range line {
			if cell != NoPlayer && !cell.IsValid() {
				return fmt.Errorf("%w: unknown cell value %d at (%d, %d)", apperror.ErrCorruptSnapshot, cell, row, column)
			}
			// a piece must rest on the bottom or on another piece
			if cell != NoPlayer && row+1 < board.Height() && cells[row+1][column] == NoPlayer {
				return fmt.Errorf("%w: floating piece at (%d, %d)", apperror.ErrCorruptSnapshot, row, column)
			}

			board.Occupy(row, column, cell)
		}
	}

	return nil
}

func validateOutcome(board *Board, snapshot Snapshot) error {
	switch snapshot.Status {
	case StatusWon:
		if !snapshot.Winner.IsValid() || !HasWin(board, snapshot.Winner) {
			return fmt.Errorf("%w: winner %d has no line", apperror.ErrCorruptSnapshot, snapshot.Winner)
		}
		if HasWin(board, snapshot.Winner.Opponent()) {
			return fmt.Errorf("%w: both players have a winning line", apperror.ErrCorruptSnapshot)
		}
	case StatusTied:
		if !board.IsFull() || snapshot.Winner != NoPlayer {
			return fmt.Errorf("%w: tie on a board that is not full", apperror.ErrCorruptSnapshot)
		}
		if HasWin(board, Player1) || HasWin(board, Player2) {
			return fmt.Errorf("%w: tie on a board with a winning line", apperror.ErrCorruptSnapshot)
		}
	case StatusInProgress:
		if snapshot.Winner != NoPlayer || board.IsFull() {
			return fmt.Errorf("%w: game in progress cannot have an outcome", apperror.ErrCorruptSnapshot)
		}
		if HasWin(board, Player1) || HasWin(board, Player2) {
			return fmt.Errorf("%w: game in progress has a winning line", apperror.ErrCorruptSnapshot)
		}
	default:
		return fmt.Errorf("%w: unknown status %d", apperror.ErrCorruptSnapshot, snapshot.Status)
	}

	return nil
}

// validateTurn - Player1 moves first, so it holds as many pieces as Player2 or one more.
// The active player flips only while the game is in progress.
func validateTurn(board *Board, snapshot Snapshot) error {
	pieces := map[Player]int{}
	for row := 0; row < board.Height(); row++ {
		for column := 0; column < board.Width(); column++ {
			pieces[board.at(row, column)]++
		}
	}

	if diff := pieces[Player1] - pieces[Player2]; diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d pieces for Player 1 and %d for Player 2",
			apperror.ErrCorruptSnapshot, pieces[Player1], pieces[Player2])
	}

	expected := Player1
	if snapshot.Moves%2 == 1 {
		expected = Player2
	}

	if snapshot.Status.IsTerminal() && snapshot.Moves > 0 {
		expected = expected.Opponent()
	}

	if snapshot.ActivePlayer != expected {
		return fmt.Errorf("%w: %s to move after %d moves, got %s",
			apperror.ErrCorruptSnapshot, expected, snapshot.Moves, snapshot.ActivePlayer)
	}

	if snapshot.Status == StatusWon && snapshot.Winner != snapshot.ActivePlayer {
		return fmt.Errorf("%w: %s won but did not make the last move", apperror.ErrCorruptSnapshot, snapshot.Winner)
	}

	return nil
}
