package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/cookalong"
)

// Compile-time interface verification.
var _ cookalong.SessionStore = (*SessionStore)(nil)

// SessionStore implements cookalong.SessionStore using SQLite.
type SessionStore struct {
	db *DB
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// GetStep retrieves the stored state for a user.
func (s *SessionStore) GetStep(ctx context.Context, userID string) (*cookalong.SessionState, error) {
	var state cookalong.SessionState
	var instructions, ingredients, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, current_step, instructions, ingredients, updated_at
		FROM sessions
		WHERE user_id = ?
	`, userID).Scan(&state.UserID, &state.CurrentStep, &instructions, &ingredients, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, cookalong.Errorf(cookalong.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}

	if state.Recipe.Instructions, err = decodeList(instructions, "instructions"); err != nil {
		return nil, err
	}
	if state.Recipe.Ingredients, err = decodeList(ingredients, "ingredients"); err != nil {
		return nil, err
	}
	if state.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &state, nil
}

// PutStep overwrites the stored state for a user.
//
// When the stored recipe snapshot is unchanged only the cursor is rewritten;
// otherwise the whole row is upserted. Neither path checks what the caller
// read earlier, so concurrent writers for one user race (last writer wins).
func (s *SessionStore) PutStep(ctx context.Context, userID string, step int, recipe cookalong.RecipeDetails) error {
	state := cookalong.SessionState{UserID: userID, CurrentStep: step, Recipe: recipe}
	if err := state.Validate(); err != nil {
		return err
	}

	instructions, ingredients, hash, err := recipeColumns(recipe)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	result, err := s.db.ExecContext(ctx, `
		UPDATE sessions
		SET current_step = ?, updated_at = ?
		WHERE user_id = ? AND recipe_hash = ?
	`, step, now, userID, hash)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (user_id, current_step, instructions, ingredients, recipe_hash, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			current_step = excluded.current_step,
			instructions = excluded.instructions,
			ingredients = excluded.ingredients,
			recipe_hash = excluded.recipe_hash,
			updated_at = excluded.updated_at
	`, userID, step, instructions, ingredients, hash, now)

	return err
}
