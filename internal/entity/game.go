package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

// Game is a live game as it is kept in storage.
type Game struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	connectfour.Snapshot
}

func NewGame(id string, state *connectfour.Game, now time.Time) *Game {
	return &Game{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Snapshot:  state.Snapshot(),
	}
}

// State - rebuilds the playable game from the stored snapshot.
func (that *Game) State() (*connectfour.Game, error) {
	state, err := connectfour.Restore(that.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", that.ID, err)
	}

	return state, nil
}

// Apply - stores the state of game after a move.
func (that *Game) Apply(state *connectfour.Game, now time.Time) {
	that.Snapshot = state.Snapshot()
	that.UpdatedAt = now
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) IsOngoing() bool {
	return that.Status == connectfour.StatusInProgress
}

// ResultMessage - returns the end-of-game announcement, or an empty string while the game is on.
func (that *Game) ResultMessage() string {
	switch that.Status {
	case connectfour.StatusWon:
		return fmt.Sprintf("%s won!", that.Winner)
	case connectfour.StatusTied:
		return "It's a tie!"
	default:
		return ""
	}
}
