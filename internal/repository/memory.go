package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type memoryRecord struct {
	data      []byte
	expiresAt time.Time
}

func (that memoryRecord) expired(now time.Time) bool {
	return !that.expiresAt.IsZero() && !now.Before(that.expiresAt)
}

// memoryGame keeps games in process. Records are stored encoded so callers never share state.
type memoryGame struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
	now     func() time.Time
}

func NewMemoryGameRepository() GameRepository {
	return newMemoryGameRepository(time.Now)
}

func newMemoryGameRepository(now func() time.Time) *memoryGame {
	return &memoryGame{
		records: make(map[string]memoryRecord),
		now:     now,
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game, ttl time.Duration) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	record := memoryRecord{data: gameJSON}
	if ttl > 0 {
		record.expiresAt = that.now().Add(ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sweepExpired(that.now())
	that.records[game.ID] = record

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	record, ok := that.records[id]
	that.mu.RUnlock()

	if ok && record.expired(that.now()) {
		that.mu.Lock()
		// the record may have been rewritten since the read lock was dropped
		record, ok = that.records[id]
		if ok && record.expired(that.now()) {
			delete(that.records, id)
			ok = false
		}
		that.mu.Unlock()
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	var existingGame entity.Game
	if err := json.Unmarshal(record.data, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	record, ok := that.records[id]
	delete(that.records, id)

	if !ok || record.expired(that.now()) {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	return nil
}

// sweepExpired - drops every expired record. Callers hold the write lock.
func (that *memoryGame) sweepExpired(now time.Time) {
	for id, record := range that.records {
		if record.expired(now) {
			delete(that.records, id)
		}
	}
}
