package selection

import (
	"context"
	"errors"
	"time"

	"cineplex/internal/shared/constants"
	"cineplex/pkg/cache"
)

// Store keeps one selection per user
type Store interface {
	Load(ctx context.Context, userID string) (State, error)
	Save(ctx context.Context, userID string, state State) error
	Clear(ctx context.Context, userID string) error
}

// envelope is the stored record, stamped with when it was written and when it
// stops being valid
type envelope struct {
	Value     State `json:"value"`
	Timestamp int64 `json:"timestamp"`
	ExpiresAt int64 `json:"expiresAt,omitempty"`
}

type cacheStore struct {
	cache cache.Service
	ttl   time.Duration
	now   func() time.Time
}

// NewCacheStore keeps selections in the cache service for ttl after the last change
func NewCacheStore(cacheService cache.Service, ttl time.Duration) Store {
	return &cacheStore{cache: cacheService, ttl: ttl, now: time.Now}
}

func (s *cacheStore) Load(ctx context.Context, userID string) (State, error) {
	var env envelope
	if err := s.cache.Get(ctx, constants.BuildSelectionKey(userID), &env); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return State{}, nil
		}
		return State{}, err
	}

	if env.ExpiresAt > 0 && s.now().UnixMilli() >= env.ExpiresAt {
		_ = s.Clear(ctx, userID)
		return State{}, nil
	}
	return env.Value, nil
}

func (s *cacheStore) Save(ctx context.Context, userID string, state State) error {
	now := s.now()
	state.UpdatedAt = now

	env := envelope{Value: state, Timestamp: now.UnixMilli()}
	if s.ttl > 0 {
		env.ExpiresAt = now.Add(s.ttl).UnixMilli()
	}
	return s.cache.Set(ctx, constants.BuildSelectionKey(userID), env, s.ttl)
}

func (s *cacheStore) Clear(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, constants.BuildSelectionKey(userID))
}
