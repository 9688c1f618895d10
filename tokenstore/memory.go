package tokenstore

import (
	"sync"

	"github.com/shopfront/paypal-integration-api/models"
)

// MemoryStore is an in-process Store suitable for single-instance
// deployments and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]models.Token
}

// NewMemoryStore returns an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]models.Token),
	}
}

// Get returns the token cached for the given context key, or nil if absent.
func (ms *MemoryStore) Get(key string) (*models.Token, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	token, ok := ms.tokens[key]
	if !ok {
		return nil, nil
	}
	return &token, nil
}

// Set stores the token for the given context key, replacing any previous one.
func (ms *MemoryStore) Set(key string, token *models.Token) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.tokens[key] = *token
	return nil
}

// Clear removes any token cached for the given context key.
func (ms *MemoryStore) Clear(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.tokens, key)
	return nil
}
