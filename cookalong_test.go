package cookalong_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/cookalong"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cookalong.Errorf(cookalong.ENOTFOUND, "session %q not found", "user-1")

	assert.Equal(t, cookalong.ENOTFOUND, cookalong.ErrorCode(err))
	assert.Equal(t, "session \"user-1\" not found", cookalong.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("get step: %w", cookalong.Errorf(cookalong.ENOTFOUND, "not found"))

	assert.Equal(t, cookalong.ENOTFOUND, cookalong.ErrorCode(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, cookalong.EINTERNAL, cookalong.ErrorCode(err))
	assert.Equal(t, "Internal error.", cookalong.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cookalong.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cookalong.ErrorMessage(nil))
}

func TestSessionState_Validate(t *testing.T) {
	t.Parallel()

	recipe := cookalong.RecipeDetails{Instructions: []string{"one", "two"}}

	t.Run("accepts step within bounds", func(t *testing.T) {
		t.Parallel()

		s := &cookalong.SessionState{UserID: "u", CurrentStep: 2, Recipe: recipe}
		assert.NoError(t, s.Validate())
	})

	t.Run("rejects missing user", func(t *testing.T) {
		t.Parallel()

		s := &cookalong.SessionState{CurrentStep: 1, Recipe: recipe}
		assert.Equal(t, cookalong.EINVALID, cookalong.ErrorCode(s.Validate()))
	})

	t.Run("rejects step below one", func(t *testing.T) {
		t.Parallel()

		s := &cookalong.SessionState{UserID: "u", CurrentStep: 0, Recipe: recipe}
		assert.Equal(t, cookalong.EINVALID, cookalong.ErrorCode(s.Validate()))
	})

	t.Run("rejects step past the last instruction", func(t *testing.T) {
		t.Parallel()

		s := &cookalong.SessionState{UserID: "u", CurrentStep: 3, Recipe: recipe}
		assert.Equal(t, cookalong.EINVALID, cookalong.ErrorCode(s.Validate()))
	})
}

func TestSessionState_Instruction(t *testing.T) {
	t.Parallel()

	s := &cookalong.SessionState{UserID: "u", CurrentStep: 2, Recipe: cookalong.RecipeDetails{
		Instructions: []string{"one", "two"},
	}}
	assert.Equal(t, "two", s.Instruction())

	s.CurrentStep = 5
	assert.Empty(t, s.Instruction())
}

func TestIntent_Slot(t *testing.T) {
	t.Parallel()

	intent := &cookalong.Intent{
		Name: cookalong.IntentSearchForRecipe,
		Slots: map[string]string{
			cookalong.SlotRecipeSearchString: "  broccoli ",
			cookalong.SlotRecipeNumber:       "",
		},
	}

	v, ok := intent.Slot(cookalong.SlotRecipeSearchString)
	assert.True(t, ok)
	assert.Equal(t, "broccoli", v)

	_, ok = intent.Slot(cookalong.SlotRecipeNumber)
	assert.False(t, ok, "empty value counts as absent")

	_, ok = (*cookalong.Intent)(nil).Slot(cookalong.SlotRecipeNumber)
	assert.False(t, ok)
}
