package connectfour

// Direction is a step between two consecutive cells of a line.
type Direction struct {
	DRow    int
	DColumn int
}

var (
	Horizontal        = Direction{DRow: 0, DColumn: 1}
	Vertical          = Direction{DRow: 1, DColumn: 0}
	DiagonalDownRight = Direction{DRow: 1, DColumn: 1}
	DiagonalDownLeft  = Direction{DRow: 1, DColumn: -1}

	Directions = [...]Direction{Horizontal, Vertical, DiagonalDownRight, DiagonalDownLeft}
)

// Cell is a (row, column) coordinate on the board.
type Cell struct {
	Row    int
	Column int
}

// IsWinningLine - reports whether the ToWin cells starting at (row, column) and stepping
// by direction are all on the board and all owned by player.
func IsWinningLine(board *Board, player Player, row, column int, direction Direction) bool {
	if !player.IsValid() {
		return false
	}

	for step := 0; step < ToWin; step++ {
		r, c := row+step*direction.DRow, column+step*direction.DColumn
		if !board.inBounds(r, c) {
			return false
		}
		if board.at(r, c) != player {
			return false
		}
	}

	return true
}

// HasWin - scans every cell and direction for a line owned by player.
func HasWin(board *Board, player Player) bool {
	return WinningLine(board, player) != nil
}

// WinningLine - returns the cells of the first line owned by player, or nil.
func WinningLine(board *Board, player Player) []Cell {
	for row := 0; row < board.height; row++ {
		for column := 0; column < board.width; column++ {
			for _, direction := range Directions {
				if IsWinningLine(board, player, row, column, direction) {
					return lineCells(row, column, direction)
				}
			}
		}
	}

	return nil
}

// HasWinThrough - checks only the lines that contain (row, column).
// After a single placement this gives the same answer as HasWin on a board that had no win before.
func HasWinThrough(board *Board, player Player, row, column int) bool {
	for _, direction := range Directions {
		for offset := 0; offset < ToWin; offset++ {
			startRow := row - offset*direction.DRow
			startColumn := column - offset*direction.DColumn
			if IsWinningLine(board, player, startRow, startColumn, direction) {
				return true
			}
		}
	}

	return false
}

func lineCells(row, column int, direction Direction) []Cell {
	cells := make([]Cell, ToWin)
	for step := range cells {
		cells[step] = Cell{Row: row + step*direction.DRow, Column: column + step*direction.DColumn}
	}

	return cells
}
