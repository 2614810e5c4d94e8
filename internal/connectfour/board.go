package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 6

	// ToWin is the number of aligned pieces that ends the game.
	ToWin = 4

	// NoSpot is returned by LandingRow when the column has no empty cell.
	NoSpot = -1
)

// Player identifies the owner of a cell. NoPlayer marks an empty cell.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent - returns the other player.
func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

func (that Player) IsValid() bool {
	return that == Player1 || that == Player2
}

func (that Player) String() string {
	switch that {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "empty"
	}
}

// Board is a row-major grid; row 0 is the top row, column 0 the leftmost column.
type Board struct {
	width  int
	height int
	cells  []Player
}

// NewBoard - creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width < ToWin || height < ToWin {
		return nil, fmt.Errorf("%w: got %dx%d", apperror.ErrInvalidDimensions, width, height)
	}

	return &Board{
		width:  width,
		height: height,
		cells:  make([]Player, width*height),
	}, nil
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

// LandingRow - returns the lowest empty row of the column, or NoSpot if the column is full.
func (that *Board) LandingRow(column int) (int, error) {
	if column < 0 || column >= that.width {
		return NoSpot, fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, column)
	}

	for row := that.height - 1; row >= 0; row-- {
		if that.at(row, column) == NoPlayer {
			return row, nil
		}
	}

	return NoSpot, nil
}

// Occupy - places the player's piece. The cell must come from LandingRow on the current board.
func (that *Board) Occupy(row, column int, player Player) {
	that.cells[row*that.width+column] = player
}

func (that *Board) IsColumnFull(column int) (bool, error) {
	row, err := that.LandingRow(column)
	if err != nil {
		return false, err
	}

	return row == NoSpot, nil
}

// IsFull - reports whether no piece can be dropped anywhere.
// Checking the top row is enough because pieces always rest on the one below.
func (that *Board) IsFull() bool {
	for column := 0; column < that.width; column++ {
		if that.at(0, column) == NoPlayer {
			return false
		}
	}

	return true
}

func (that *Board) CellAt(row, column int) (Player, error) {
	if !that.inBounds(row, column) {
		return NoPlayer, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, column)
	}

	return that.at(row, column), nil
}

// Cells - returns a copy of the grid as rows.
func (that *Board) Cells() [][]Player {
	rows := make([][]Player, that.height)
	for row := range rows {
		rows[row] = make([]Player, that.width)
		copy(rows[row], that.cells[row*that.width:(row+1)*that.width])
	}

	return rows
}

// OpenColumns - returns the columns that still accept a piece, left to right.
func (that *Board) OpenColumns() []int {
	columns := make([]int, 0, that.width)
	for column := 0; column < that.width; column++ {
		if that.at(0, column) == NoPlayer {
			columns = append(columns, column)
		}
	}

	return columns
}

func (that *Board) OccupiedCount() int {
	count := 0
	for _, cell := range that.cells {
		if cell != NoPlayer {
			count++
		}
	}

	return count
}

func (that *Board) inBounds(row, column int) bool {
	return row >= 0 && row < that.height && column >= 0 && column < that.width
}

func (that *Board) at(row, column int) Player {
	return that.cells[row*that.width+column]
}
