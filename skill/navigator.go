// Package skill implements the recipe skill: step navigation over the
// durable session store and the intent router that answers each turn.
package skill

import (
	"context"

	"github.com/fwojciec/cookalong"
)

// Transition is the outcome of a navigation command.
type Transition struct {
	// State is the state after the command. It equals the stored state.
	State *cookalong.SessionState

	// Prior is the step before the command.
	Prior int

	// AtEnd reports that next was requested on the last step. The cursor
	// stays on the last step and nothing is written.
	AtEnd bool

	// AtStart reports that previous was requested on the first step. The
	// cursor stays on the first step and nothing is written.
	AtStart bool
}

// Navigator moves a user's cursor through the instructions of the picked
// recipe. Every command reads the store; commands that move the cursor write
// it back before returning.
type Navigator struct {
	store cookalong.SessionStore
}

// NewNavigator creates a Navigator over the store.
func NewNavigator(store cookalong.SessionStore) *Navigator {
	return &Navigator{store: store}
}

// Pick starts the recipe at step 1, replacing whatever the user was cooking.
// Returns EINVALID if the recipe has no instructions; nothing is written then.
func (n *Navigator) Pick(ctx context.Context, userID string, recipe cookalong.RecipeDetails) (*cookalong.SessionState, error) {
	if recipe.Empty() {
		return nil, cookalong.Errorf(cookalong.EINVALID, "recipe has no instructions")
	}
	if err := n.store.PutStep(ctx, userID, 1, recipe); err != nil {
		return nil, err
	}
	return &cookalong.SessionState{UserID: userID, CurrentStep: 1, Recipe: recipe}, nil
}

// Next advances to the following step.
// Returns ENOTFOUND if the user has not picked a recipe.
func (n *Navigator) Next(ctx context.Context, userID string) (*Transition, error) {
	return n.move(ctx, userID, 1)
}

// Previous goes back one step.
// Returns ENOTFOUND if the user has not picked a recipe.
func (n *Navigator) Previous(ctx context.Context, userID string) (*Transition, error) {
	return n.move(ctx, userID, -1)
}

// Repeat returns the current state. It never writes to the store.
// Returns ENOTFOUND if the user has not picked a recipe.
func (n *Navigator) Repeat(ctx context.Context, userID string) (*cookalong.SessionState, error) {
	return n.load(ctx, userID)
}

func (n *Navigator) move(ctx context.Context, userID string, delta int) (*Transition, error) {
	state, err := n.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	tr := &Transition{State: state, Prior: state.CurrentStep}
	target := state.CurrentStep + delta
	switch {
	case target > state.Recipe.StepCount():
		tr.AtEnd = true
		return tr, nil
	case target < 1:
		tr.AtStart = true
		return tr, nil
	}

	if err := n.store.PutStep(ctx, userID, target, state.Recipe); err != nil {
		return nil, err
	}
	state.CurrentStep = target
	return tr, nil
}

// load reads the user's state. A record without instructions is reported as
// ENOTFOUND; a cursor outside the instructions is clamped into range.
func (n *Navigator) load(ctx context.Context, userID string) (*cookalong.SessionState, error) {
	state, err := n.store.GetStep(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.Recipe.Empty() {
		return nil, cookalong.Errorf(cookalong.ENOTFOUND, "session has no recipe")
	}
	state.CurrentStep = min(max(state.CurrentStep, 1), state.Recipe.StepCount())
	return state, nil
}
