package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game, ttl time.Duration) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// Settings fixes the board size and storage lifetimes of every game the manager starts.
type Settings struct {
	Width           int
	Height          int
	GameTTL         time.Duration
	FinishedGameTTL time.Duration
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	settings Settings

	now   func() time.Time
	newID func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, settings Settings) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		settings: settings,

		now:   time.Now,
		newID: uuid.NewString,
	}
}

// StartGame - creates and stores a new game with an empty board.
func (that *GameManager) StartGame(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "StartGame")

	state, err := connectfour.NewGame(that.settings.Width, that.settings.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game := entity.NewGame(that.newID(), state, that.now())
	if err = that.gameRepo.CreateOrUpdate(ctx, game, that.settings.GameTTL); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game started", "game_id", game.ID, "width", game.Width, "height", game.Height)

	return game, nil
}

// DropPiece - plays the active player's piece in column.
// A rejected move returns the unchanged game together with the rule error.
func (that *GameManager) DropPiece(ctx context.Context, gameID string, column int) (*entity.Game, error) {
	log := that.logger.With("method", "DropPiece", "game_id", gameID, "column", column)

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	state, err := game.State()
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	move, err := state.DropPiece(column)
	if err != nil {
		if isRuleError(err) {
			log.Debug("move rejected", "error", err)
			return game, fmt.Errorf("move rejected: %w", err)
		}

		return nil, fmt.Errorf("failed to drop piece: %w", err)
	}

	game.Apply(state, that.now())

	ttl := that.settings.GameTTL
	if game.IsFinished() {
		ttl = that.settings.FinishedGameTTL
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game, ttl); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("piece dropped", "player", int(move.Player), "row", move.Row)

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status.String(), "winner", int(game.Winner), "moves", game.Moves)
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// AbandonGame - removes a game that will not be finished.
func (that *GameManager) AbandonGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "AbandonGame", "game_id", gameID)

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game abandoned")

	return nil
}

func isRuleError(err error) bool {
	return errors.Is(err, apperror.ErrInvalidColumn) ||
		errors.Is(err, apperror.ErrColumnFull) ||
		errors.Is(err, apperror.ErrGameOver)
}
