package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
	"github.com/vietddude/touradmin/internal/infra/storage"
)

const authPath = "/admin/auth"

// AuthService opens and closes the admin session.
type AuthService struct {
	client Doer
	tokens storage.TokenStore
}

func NewAuthService(c Doer, tokens storage.TokenStore) *AuthService {
	return &AuthService{client: c, tokens: tokens}
}

// Login exchanges credentials for a token pair and stores it.
// Any previous session is dropped first so a rejected login is never
// mistaken for an expired access token.
func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (*domain.LoginPayload, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.tokens.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear previous session: %w", err)
	}

	out, err := call[domain.LoginPayload](ctx, s.client, &api.Request{
		Method: http.MethodPost,
		Path:   authPath + "/login",
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, &api.Error{Message: "Unexpected response from server"}
	}

	if err := storage.SaveTokens(ctx, s.tokens, out.Tokens); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return out, nil
}

// Logout tells the backend to revoke the session and clears the local tokens
// whether or not that call succeeds. The server error, if any, is returned.
func (s *AuthService) Logout(ctx context.Context) error {
	// An expired session is what logout wants anyway; no need to announce it.
	serverErr := exec(api.WithoutSessionExpiredHook(ctx), s.client, &api.Request{Method: http.MethodPost, Path: authPath + "/logout"})

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return serverErr
}

// Me returns the signed-in admin.
func (s *AuthService) Me(ctx context.Context) (*domain.Admin, error) {
	return call[domain.Admin](ctx, s.client, &api.Request{Method: http.MethodGet, Path: authPath + "/me"})
}
