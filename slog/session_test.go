package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/cookalong"
	"github.com/fwojciec/cookalong/mock"
	cookslog "github.com/fwojciec/cookalong/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSessionStore_GetStep(t *testing.T) {
	t.Parallel()

	t.Run("logs step and step count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SessionStore{
			GetStepFn: func(_ context.Context, userID string) (*cookalong.SessionState, error) {
				return &cookalong.SessionState{
					UserID:      userID,
					CurrentStep: 2,
					Recipe:      cookalong.RecipeDetails{Instructions: []string{"Chop.", "Bake.", "Serve."}},
				}, nil
			},
		}

		store := cookslog.NewLoggingSessionStore(inner, logger)
		state, err := store.GetStep(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, 2, state.CurrentStep)
		output := buf.String()
		assert.Contains(t, output, `msg="session get"`)
		assert.Contains(t, output, "user=user-1")
		assert.Contains(t, output, "step=2")
		assert.Contains(t, output, "steps=3")
	})

	t.Run("logs a missing session without error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SessionStore{
			GetStepFn: func(context.Context, string) (*cookalong.SessionState, error) {
				return nil, cookalong.Errorf(cookalong.ENOTFOUND, "session not found")
			},
		}

		store := cookslog.NewLoggingSessionStore(inner, logger)
		_, err := store.GetStep(context.Background(), "user-1")

		assert.Equal(t, cookalong.ENOTFOUND, cookalong.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "found=false")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs store failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SessionStore{
			GetStepFn: func(context.Context, string) (*cookalong.SessionState, error) {
				return nil, errors.New("database is locked")
			},
		}

		store := cookslog.NewLoggingSessionStore(inner, logger)
		_, err := store.GetStep(context.Background(), "user-1")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="database is locked"`)
	})
}

func TestLoggingSessionStore_PutStep(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var gotStep int
	inner := &mock.SessionStore{
		PutStepFn: func(_ context.Context, _ string, step int, _ cookalong.RecipeDetails) error {
			gotStep = step
			return nil
		},
	}

	store := cookslog.NewLoggingSessionStore(inner, logger)
	err := store.PutStep(context.Background(), "user-1", 3, cookalong.RecipeDetails{Instructions: []string{"a", "b", "c"}})

	require.NoError(t, err)
	assert.Equal(t, 3, gotStep)
	output := buf.String()
	assert.Contains(t, output, `msg="session put"`)
	assert.Contains(t, output, "step=3")
	assert.Contains(t, output, "steps=3")
}
