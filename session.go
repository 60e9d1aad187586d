package cookalong

import (
	"context"
	"time"
)

// SessionState is the durable per-user cooking progress.
type SessionState struct {
	UserID      string        `json:"userId"`
	CurrentStep int           `json:"currentStep"`
	Recipe      RecipeDetails `json:"recipe"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Validate returns an error if the state contains invalid fields.
func (s *SessionState) Validate() error {
	if s.UserID == "" {
		return Errorf(EINVALID, "session user ID required")
	}
	if s.CurrentStep < 1 {
		return Errorf(EINVALID, "session step must be at least 1, got %d", s.CurrentStep)
	}
	if n := s.Recipe.StepCount(); n > 0 && s.CurrentStep > n {
		return Errorf(EINVALID, "session step %d exceeds %d instructions", s.CurrentStep, n)
	}
	return nil
}

// Instruction returns the instruction at the current step.
func (s *SessionState) Instruction() string {
	if s.CurrentStep < 1 || s.CurrentStep > s.Recipe.StepCount() {
		return ""
	}
	return s.Recipe.Instructions[s.CurrentStep-1]
}

// SessionStore persists the step cursor and recipe snapshot across turns.
//
// Writes are unconditional overwrites (last writer wins). Two concurrent
// turns for the same user can race and lose an update; callers that need
// stronger guarantees must serialize turns per user.
type SessionStore interface {
	// GetStep returns the stored state for the user.
	// Returns ENOTFOUND if the user has never picked a recipe.
	GetStep(ctx context.Context, userID string) (*SessionState, error)

	// PutStep overwrites the stored state for the user.
	// Returns EINVALID if the step is outside the recipe's bounds.
	PutStep(ctx context.Context, userID string, step int, recipe RecipeDetails) error
}
