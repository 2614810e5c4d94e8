package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWinningLine(t *testing.T) {
	t.Run("Diagonal down-right inside the board", func(t *testing.T) {
		// Given: Player 2 holds (1,2), (2,3), (3,4), (4,5)
		board := boardFromRows(t,
			".......",
			"..2....",
			"...2...",
			"....2..",
			".....2.",
			".......",
		)

		// When: checking the line starting at (1,2)
		isWin := IsWinningLine(board, Player2, 1, 2, DiagonalDownRight)

		// Then: it is a win for Player 2 only
		assert.True(t, isWin)
		assert.False(t, IsWinningLine(board, Player1, 1, 2, DiagonalDownRight))
		assert.True(t, HasWin(board, Player2))
		assert.False(t, HasWin(board, Player1))
	})

	t.Run("Line running off the right edge is rejected", func(t *testing.T) {
		// Given: three matching cells whose fourth would be at column 7
		board := boardFromRows(t,
			".......",
			"....2..",
			".....2.",
			"......2",
			".......",
			".......",
		)

		// When: checking the line starting at (1,4)
		isWin := IsWinningLine(board, Player2, 1, 4, DiagonalDownRight)

		// Then: it is not a win and nothing wraps around
		assert.False(t, isWin)
		assert.False(t, HasWin(board, Player2))
	})

	t.Run("Line running off the bottom edge is rejected", func(t *testing.T) {
		board := boardFromRows(t,
			".......",
			".......",
			".......",
			"1......",
			"1......",
			"1......",
		)

		assert.False(t, IsWinningLine(board, Player1, 3, 0, Vertical))
		assert.False(t, IsWinningLine(board, Player1, 4, 0, Vertical))
		assert.False(t, HasWin(board, Player1))
	})

	t.Run("Start outside the board is rejected", func(t *testing.T) {
		board := boardFromRows(t,
			"1111",
			"....",
			"....",
			"....",
		)

		assert.True(t, IsWinningLine(board, Player1, 0, 0, Horizontal))
		assert.False(t, IsWinningLine(board, Player1, 0, -1, Horizontal))
		assert.False(t, IsWinningLine(board, Player1, -1, 0, Horizontal))
	})

	t.Run("NoPlayer never wins on an empty board", func(t *testing.T) {
		board := boardFromRows(t,
			"....",
			"....",
			"....",
			"....",
		)

		assert.False(t, IsWinningLine(board, NoPlayer, 0, 0, Horizontal))
		assert.False(t, HasWin(board, NoPlayer))
	})
}

func TestHasWin(t *testing.T) {
	testCases := []struct {
		name   string
		rows   []string
		player Player
		want   bool
	}{
		{
			name: "Horizontal in the bottom right corner",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"...1111",
			},
			player: Player1,
			want:   true,
		},
		{
			name: "Vertical in the top left corner",
			rows: []string{
				"2......",
				"2......",
				"2......",
				"2......",
				"1......",
				"1......",
			},
			player: Player2,
			want:   true,
		},
		{
			name: "Diagonal down-left ending in the bottom left corner",
			rows: []string{
				".......",
				".......",
				"...1...",
				"..1....",
				".1.....",
				"1......",
			},
			player: Player1,
			want:   true,
		},
		{
			name: "Diagonal down-right from the top left corner",
			rows: []string{
				"2......",
				".2.....",
				"..2....",
				"...2...",
				".......",
				".......",
			},
			player: Player2,
			want:   true,
		},
		{
			name: "Three in a row with a gap is not a win",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"111.111",
			},
			player: Player1,
			want:   false,
		},
		{
			name: "Line broken by the opponent",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"1121112",
			},
			player: Player1,
			want:   false,
		},
		{
			name: "Opponent line does not count",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"2222...",
			},
			player: Player1,
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a prepared board
			board := boardFromRows(t, tc.rows...)

			// When: scanning for a win
			got := HasWin(board, tc.player)

			// Then: the result matches
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasWinThrough(t *testing.T) {
	board := boardFromRows(t,
		".......",
		".......",
		"....1..",
		"...1...",
		"..1....",
		".1.....",
	)

	t.Run("Every cell of the line completes it", func(t *testing.T) {
		for _, cell := range []Cell{{2, 4}, {3, 3}, {4, 2}, {5, 1}} {
			assert.True(t, HasWinThrough(board, Player1, cell.Row, cell.Column), "cell %v", cell)
		}
	})

	t.Run("Cells off the line see no win", func(t *testing.T) {
		assert.False(t, HasWinThrough(board, Player1, 5, 0))
		assert.False(t, HasWinThrough(board, Player1, 0, 6))
	})
}

func TestWinningLine(t *testing.T) {
	t.Run("Returns the four cells of the line", func(t *testing.T) {
		board := boardFromRows(t,
			"....",
			"...2",
			"..2.",
			".2..",
			"2...",
		)

		line := WinningLine(board, Player2)

		assert.Equal(t, []Cell{{1, 3}, {2, 2}, {3, 1}, {4, 0}}, line)
	})

	t.Run("Returns nil without a line", func(t *testing.T) {
		board := boardFromRows(t,
			"....",
			"....",
			"....",
			"222.",
		)

		assert.Nil(t, WinningLine(board, Player2))
	})
}
