package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietddude/touradmin/internal/core/domain"
)

var (
	// ErrNoSession is returned by callers that require a stored access token.
	ErrNoSession = errors.New("no session: run `touradmin login` first")
)

// TokenStore persists the access and refresh tokens of one admin session.
// An empty string with a nil error means the token is absent.
type TokenStore interface {
	// AccessToken returns the stored access token
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken returns the stored refresh token
	RefreshToken(ctx context.Context) (string, error)

	// SetAccessToken replaces the access token
	SetAccessToken(ctx context.Context, token string) error

	// SetRefreshToken replaces the refresh token
	SetRefreshToken(ctx context.Context, token string) error

	// Clear removes both tokens
	Clear(ctx context.Context) error
}

// SaveTokens stores a token pair. An empty refresh token leaves the stored one untouched.
func SaveTokens(ctx context.Context, store TokenStore, tokens domain.Tokens) error {
	if err := store.SetAccessToken(ctx, tokens.AccessToken); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	if tokens.RefreshToken == "" {
		return nil
	}
	if err := store.SetRefreshToken(ctx, tokens.RefreshToken); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// HasSession reports whether an access token is stored.
func HasSession(ctx context.Context, store TokenStore) (bool, error) {
	token, err := store.AccessToken(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}
