package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
)

const (
	commandNew  = "new"
	commandQuit = "quit"

	gameOverHint = "Game is over, type 'new' to play again."
)

type gameManager interface {
	StartGame(ctx context.Context) (*entity.Game, error)
	DropPiece(ctx context.Context, gameID string, column int) (*entity.Game, error)
	AbandonGame(ctx context.Context, gameID string) error
}

// Session is a hot-seat game played over a text stream. Columns are numbered from 1 for people.
type Session struct {
	logger  *slog.Logger
	manager gameManager
	in      *bufio.Scanner
	out     io.Writer

	game *entity.Game
}

func NewSession(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger:  logger.With("component", "console"),
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run - plays until the input ends, the player quits or ctx is canceled.
func (that *Session) Run(ctx context.Context) error {
	if err := that.startGame(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	lines, readErr := that.readLines(done)

	for {
		that.prompt()

		select {
		case <-ctx.Done():
			that.abandonGame(context.WithoutCancel(ctx))
			return nil
		case line, ok := <-lines:
			if !ok {
				that.abandonGame(ctx)
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}

			quit, err := that.handleInput(ctx, line)
			if err != nil || quit {
				return err
			}
		}
	}
}

// readLines - scans input in the background so a blocked read never holds up cancellation.
// lines is closed at the end of input, after the scan error is sent on readErr.
func (that *Session) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- that.in.Text():
			case <-done:
				return
			}
		}

		readErr <- that.in.Err()
	}()

	return lines, readErr
}

func (that *Session) handleInput(ctx context.Context, line string) (bool, error) {
	input := strings.ToLower(strings.TrimSpace(line))

	switch input {
	case "":
		return false, nil
	case commandQuit, "q":
		that.abandonGame(ctx)
		return true, nil
	case commandNew, "n":
		that.abandonGame(ctx)
		return false, that.startGame(ctx)
	}

	column, err := strconv.Atoi(input)
	if err != nil {
		that.printf("Unknown command %q. Type a column number, 'new' or 'quit'.\n", input)
		return false, nil
	}

	return false, that.dropPiece(ctx, column-1)
}

func (that *Session) startGame(ctx context.Context) error {
	game, err := that.manager.StartGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.game = game
	that.render()

	return nil
}

func (that *Session) dropPiece(ctx context.Context, column int) error {
	log := that.logger.With("method", "dropPiece", "game_id", that.game.ID)

	if that.game.IsFinished() {
		that.printf("%s\n", gameOverHint)
		return nil
	}

	game, err := that.manager.DropPiece(ctx, that.game.ID, column)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrColumnFull):
		// nothing happens when a full column is picked
		return nil
	case errors.Is(err, apperror.ErrInvalidColumn):
		that.printf("Pick a column between 1 and %d.\n", that.game.Width)
		return nil
	case errors.Is(err, apperror.ErrGameOver):
		that.printf("%s\n", gameOverHint)
		return nil
	default:
		log.Error("failed to drop piece", "error", err)
		return fmt.Errorf("failed to drop piece: %w", err)
	}

	that.game = game
	that.render()

	if game.IsFinished() {
		that.printf("%s\n", game.ResultMessage())
		that.printf("Type 'new' to play again or 'quit' to exit.\n")
	}

	return nil
}

func (that *Session) abandonGame(ctx context.Context) {
	if that.game == nil || that.game.IsFinished() {
		return
	}

	err := that.manager.AbandonGame(ctx, that.game.ID)
	if err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		that.logger.Warn("failed to abandon game", "game_id", that.game.ID, "error", err)
	}
}

func (that *Session) prompt() {
	if that.game == nil || that.game.IsFinished() {
		that.printf("> ")
		return
	}

	that.printf("%s (%c), choose a column: ", that.game.ActivePlayer, pieceSymbol(that.game.ActivePlayer))
}

func (that *Session) render() {
	that.printf("%s", RenderBoard(that.game.Cells))
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// RenderBoard - draws the grid with column numbers on top, row 0 first.
// Cells are padded to the widest column number so wide boards stay aligned.
func RenderBoard(cells [][]connectfour.Player) string {
	if len(cells) == 0 {
		return ""
	}

	var builder strings.Builder

	pad := len(strconv.Itoa(len(cells[0])))

	for column := range cells[0] {
		fmt.Fprintf(&builder, " %*d", pad, column+1)
	}
	builder.WriteString("\n")

	for _, row := range cells {
		builder.WriteString("|")
		for column, cell := range row {
			if column > 0 {
				builder.WriteString(" ")
			}
			fmt.Fprintf(&builder, "%*c", pad, pieceSymbol(cell))
		}
		builder.WriteString("|\n")
	}

	return builder.String()
}

func pieceSymbol(player connectfour.Player) rune {
	switch player {
	case connectfour.Player1:
		return 'X'
	case connectfour.Player2:
		return 'O'
	default:
		return '.'
	}
}
