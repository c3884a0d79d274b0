package memory

import (
	"context"
	"sync"
)

// TokenStore keeps the session in process memory. It is lost on exit.
type TokenStore struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// NewTokenStoreWith returns a store pre-populated with a session.
func NewTokenStoreWith(accessToken, refreshToken string) *TokenStore {
	return &TokenStore{accessToken: accessToken, refreshToken: refreshToken}
}

func (s *TokenStore) AccessToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, nil
}

func (s *TokenStore) RefreshToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken, nil
}

func (s *TokenStore) SetAccessToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
	return nil
}

func (s *TokenStore) SetRefreshToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshToken = token
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	return nil
}
