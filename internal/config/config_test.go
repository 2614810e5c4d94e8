package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the file and applies defaults", func(t *testing.T) {
		// Given: a config file that sets only some values
		path := writeConfig(t, `
log-level: debug
board:
  width: 8
storage:
  driver: redis
  game-ttl: 1h
redis:
  host: cache
`)

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: file values win and the rest fall back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 8, conf.Board.Width)
		assert.Equal(t, 6, conf.Board.Height)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, time.Hour, conf.Storage.GameTTL)
		assert.Equal(t, 10*time.Minute, conf.Storage.FinishedGameTTL)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, "board:\n  width: 8\n  height: 7\n")
		t.Setenv("BOARD_HEIGHT", "9")

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the environment value is used
		assert.Equal(t, 8, conf.Board.Width)
		assert.Equal(t, 9, conf.Board.Height)
	})

	t.Run("Missing file falls back to the environment", func(t *testing.T) {
		// Given: no config file
		path := filepath.Join(t.TempDir(), "absent.yml")
		t.Setenv("STORAGE_DRIVER", StorageMemory)

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults are used
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 7, conf.Board.Width)
		assert.Equal(t, 6, conf.Board.Height)
		assert.Equal(t, 24*time.Hour, conf.Storage.GameTTL)
	})

	t.Run("Board size follows the game rules", func(t *testing.T) {
		testCases := []struct {
			name    string
			content string
			wantErr error
		}{
			{"narrower than a line", "board:\n  width: 3\n", apperror.ErrInvalidDimensions},
			{"shorter than a line", "board:\n  height: 3\n", apperror.ErrInvalidDimensions},
			{"smallest playable board", "board:\n  width: 4\n  height: 4\n", nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Given: a config file with the board size
				path := writeConfig(t, tc.content)

				// When: it is loaded
				conf, err := Load(path)

				// Then: the result matches what a new game would accept
				if tc.wantErr != nil {
					require.ErrorIs(t, err, tc.wantErr)
					return
				}
				require.NoError(t, err)
				_, err = connectfour.NewBoard(conf.Board.Width, conf.Board.Height)
				require.NoError(t, err)
			})
		}
	})

	t.Run("Rejects an unknown storage driver", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  driver: postgres\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: loud\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownLevel)
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "log-level: loud\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
