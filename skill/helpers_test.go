package skill_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fwojciec/cookalong"
	"github.com/fwojciec/cookalong/mock"
)

// memoryStore is a SessionStore double that keeps encoded records so tests
// can compare stored bytes.
type memoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
	writes  int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[string][]byte)}
}

func (m *memoryStore) mock() *mock.SessionStore {
	return &mock.SessionStore{
		GetStepFn: func(_ context.Context, userID string) (*cookalong.SessionState, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			raw, ok := m.records[userID]
			if !ok {
				return nil, cookalong.Errorf(cookalong.ENOTFOUND, "session not found")
			}
			var state cookalong.SessionState
			if err := json.Unmarshal(raw, &state); err != nil {
				return nil, err
			}
			return &state, nil
		},
		PutStepFn: func(_ context.Context, userID string, step int, recipe cookalong.RecipeDetails) error {
			state := cookalong.SessionState{UserID: userID, CurrentStep: step, Recipe: recipe}
			if err := state.Validate(); err != nil {
				return err
			}
			raw, err := json.Marshal(state)
			if err != nil {
				return err
			}
			m.mu.Lock()
			defer m.mu.Unlock()
			m.records[userID] = raw
			m.writes++
			return nil
		},
	}
}

func (m *memoryStore) raw(userID string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.records[userID]...)
}

func (m *memoryStore) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func fiveSteps() cookalong.RecipeDetails {
	return cookalong.RecipeDetails{
		Ingredients:  []string{"1 lb broccoli", "1 tbsp oil"},
		Instructions: []string{"Preheat.", "Chop.", "Toss.", "Roast.", "Serve."},
	}
}
