// Package redis provides a Redis-backed cookalong.SessionStore.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/cookalong"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces session keys.
const DefaultKeyPrefix = "cookalong:session:"

// Compile-time interface verification.
var _ cookalong.SessionStore = (*SessionStore)(nil)

// record is the stored value for one user. It mirrors the durable record
// schema so other tools can read it without this package.
type record struct {
	UserID       string    `json:"userId"`
	CurrentStep  int       `json:"currentStep"`
	Instructions []string  `json:"instructions"`
	Ingredients  []string  `json:"ingredients"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SessionStore implements cookalong.SessionStore using one JSON value per
// user. Writes are plain SETs, so the last writer wins.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// Option configures a SessionStore.
type Option func(*SessionStore)

// WithTTL expires a user's record after d without writes. Zero keeps records forever.
func WithTTL(d time.Duration) Option {
	return func(s *SessionStore) {
		s.ttl = d
	}
}

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *SessionStore) {
		s.prefix = prefix
	}
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client redis.UniversalClient, opts ...Option) *SessionStore {
	s := &SessionStore{
		client: client,
		prefix: DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the Redis key holding the user's record.
func (s *SessionStore) Key(userID string) string {
	return s.prefix + userID
}

// GetStep retrieves the stored state for a user.
func (s *SessionStore) GetStep(ctx context.Context, userID string) (*cookalong.SessionState, error) {
	raw, err := s.client.Get(ctx, s.Key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cookalong.Errorf(cookalong.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if rec.Instructions == nil {
		rec.Instructions = []string{}
	}
	if rec.Ingredients == nil {
		rec.Ingredients = []string{}
	}

	return &cookalong.SessionState{
		UserID:      rec.UserID,
		CurrentStep: rec.CurrentStep,
		Recipe: cookalong.RecipeDetails{
			Ingredients:  rec.Ingredients,
			Instructions: rec.Instructions,
		},
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// PutStep overwrites the stored state for a user.
func (s *SessionStore) PutStep(ctx context.Context, userID string, step int, recipe cookalong.RecipeDetails) error {
	state := cookalong.SessionState{UserID: userID, CurrentStep: step, Recipe: recipe}
	if err := state.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(record{
		UserID:       userID,
		CurrentStep:  step,
		Instructions: recipe.Instructions,
		Ingredients:  recipe.Ingredients,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, s.Key(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}
