// README: Last successful plan per user, cached in Redis.
package lastplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"roady/internal/trip"
)

const (
	keyPrefix = "lastplan:%s"
	// Plans older than this are unlikely to still matter for session
	// continuity.
	keyTTL = 30 * 24 * time.Hour
)

// ErrNotFound is returned when a user has no cached plan.
var ErrNotFound = errors.New("no cached plan")

// Entry is the cached pair of request parameters and resulting itinerary.
type Entry struct {
	Request   trip.Request   `json:"request"`
	Itinerary trip.Itinerary `json:"itinerary"`
	SavedAt   time.Time      `json:"savedAt"`
}

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Put replaces the user's cached plan.
func (s *Store) Put(ctx context.Context, userID string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	return s.redis.Set(ctx, fmt.Sprintf(keyPrefix, userID), data, keyTTL).Err()
}

// Get returns the user's cached plan, or ErrNotFound.
func (s *Store) Get(ctx context.Context, userID string) (Entry, error) {
	data, err := s.redis.Get(ctx, fmt.Sprintf(keyPrefix, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("unmarshal entry: %w", err)
	}
	return e, nil
}
