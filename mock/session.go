package mock

import (
	"context"

	"github.com/fwojciec/cookalong"
)

var _ cookalong.SessionStore = (*SessionStore)(nil)

// SessionStore is a mock implementation of cookalong.SessionStore.
type SessionStore struct {
	GetStepFn func(ctx context.Context, userID string) (*cookalong.SessionState, error)
	PutStepFn func(ctx context.Context, userID string, step int, recipe cookalong.RecipeDetails) error
}

func (s *SessionStore) GetStep(ctx context.Context, userID string) (*cookalong.SessionState, error) {
	return s.GetStepFn(ctx, userID)
}

func (s *SessionStore) PutStep(ctx context.Context, userID string, step int, recipe cookalong.RecipeDetails) error {
	return s.PutStepFn(ctx, userID, step, recipe)
}
