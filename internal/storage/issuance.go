package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/luikyv/gotok/pkg/gotok"
)

type IssuanceManager struct {
	mu     sync.RWMutex
	Tokens map[string]gotok.IssuedToken
}

func NewIssuanceManager() *IssuanceManager {
	return &IssuanceManager{
		Tokens: make(map[string]gotok.IssuedToken),
	}
}

func (m *IssuanceManager) Save(
	_ context.Context,
	token gotok.IssuedToken,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Tokens[token.ID] = token
	return nil
}

func (m *IssuanceManager) IssuedToken(
	_ context.Context,
	id string,
) (
	gotok.IssuedToken,
	error,
) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, exists := m.Tokens[id]
	if !exists {
		return gotok.IssuedToken{}, gotok.ErrNotFound
	}

	return token, nil
}

func (m *IssuanceManager) IssuedTokens(
	_ context.Context,
	sessionID string,
) (
	[]gotok.IssuedToken,
	error,
) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens := []gotok.IssuedToken{}
	for _, token := range m.Tokens {
		if token.SessionID == sessionID {
			tokens = append(tokens, token)
		}
	}

	slices.SortFunc(tokens, func(a, b gotok.IssuedToken) int {
		return a.IssuedAt.Compare(b.IssuedAt)
	})
	return tokens, nil
}
