package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// TokenRepo implements storage.TokenStore using the admin_sessions table.
type TokenRepo struct {
	db      *DB
	profile string
}

// NewTokenRepo creates a PostgreSQL token store for a profile.
func NewTokenRepo(db *DB, profile string) *TokenRepo {
	if profile == "" {
		profile = "default"
	}
	return &TokenRepo{db: db, profile: profile}
}

type sessionRow struct {
	AccessToken  string `db:"access_token"`
	RefreshToken string `db:"refresh_token"`
}

func (r *TokenRepo) AccessToken(ctx context.Context) (string, error) {
	row, err := r.get(ctx)
	if err != nil {
		return "", err
	}
	return row.AccessToken, nil
}

func (r *TokenRepo) RefreshToken(ctx context.Context) (string, error) {
	row, err := r.get(ctx)
	if err != nil {
		return "", err
	}
	return row.RefreshToken, nil
}

func (r *TokenRepo) SetAccessToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_sessions (profile, access_token, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (profile) DO UPDATE
		SET access_token = EXCLUDED.access_token, updated_at = now()`,
		r.profile, token,
	)
	if err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	return nil
}

func (r *TokenRepo) SetRefreshToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_sessions (profile, refresh_token, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (profile) DO UPDATE
		SET refresh_token = EXCLUDED.refresh_token, updated_at = now()`,
		r.profile, token,
	)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *TokenRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE profile = $1`, r.profile); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *TokenRepo) get(ctx context.Context) (sessionRow, error) {
	var row sessionRow
	err := r.db.GetContext(ctx, &row,
		`SELECT access_token, refresh_token FROM admin_sessions WHERE profile = $1`, r.profile)
	if errors.Is(err, sql.ErrNoRows) {
		return sessionRow{}, nil // No session
	}
	if err != nil {
		return sessionRow{}, fmt.Errorf("failed to get session: %w", err)
	}
	return row, nil
}
