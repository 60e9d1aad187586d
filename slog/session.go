package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cookalong"
)

// Ensure LoggingSessionStore implements cookalong.SessionStore.
var _ cookalong.SessionStore = (*LoggingSessionStore)(nil)

// LoggingSessionStore wraps a SessionStore with logging. A missing session
// is logged without an error.
type LoggingSessionStore struct {
	next   cookalong.SessionStore
	logger *slog.Logger
}

// NewLoggingSessionStore creates a new LoggingSessionStore.
func NewLoggingSessionStore(next cookalong.SessionStore, logger *slog.Logger) *LoggingSessionStore {
	return &LoggingSessionStore{next: next, logger: logger}
}

func (s *LoggingSessionStore) GetStep(ctx context.Context, userID string) (state *cookalong.SessionState, err error) {
	defer func(begin time.Time) {
		attrs := []any{"user", userID, "duration", time.Since(begin)}
		switch {
		case err == nil:
			attrs = append(attrs, "step", state.CurrentStep, "steps", state.Recipe.StepCount())
		case cookalong.ErrorCode(err) == cookalong.ENOTFOUND:
			attrs = append(attrs, "found", false)
		default:
			attrs = append(attrs, "err", err)
		}
		s.logger.Info("session get", attrs...)
	}(time.Now())
	return s.next.GetStep(ctx, userID)
}

func (s *LoggingSessionStore) PutStep(ctx context.Context, userID string, step int, recipe cookalong.RecipeDetails) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("session put",
			"user", userID,
			"step", step,
			"steps", recipe.StepCount(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.PutStep(ctx, userID, step, recipe)
}
