package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/storage"
	"github.com/vietddude/touradmin/internal/metrics"
)

// errNoRefreshToken makes Do surface the original 401 instead of a refresh error.
var errNoRefreshToken = errors.New("no refresh token stored")

// refreshAccessToken returns an access token to replay with after a 401 that was
// produced with staleToken. Concurrent callers share one in-flight refresh.
func (c *Client) refreshAccessToken(ctx context.Context, staleToken string) (string, error) {
	ch := c.refreshGroup.DoChan("refresh", func() (any, error) {
		// The flight outlives any single caller's cancellation.
		return c.refresh(context.WithoutCancel(ctx), staleToken)
	})

	select {
	case <-ctx.Done():
		return "", normalize(0, nil, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (c *Client) refresh(ctx context.Context, staleToken string) (string, error) {
	current, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return "", normalize(0, nil, fmt.Errorf("read access token: %w", err))
	}
	// Someone already replaced the rejected token; replay with theirs.
	if current != "" && current != staleToken {
		metrics.TokenRefreshTotal.WithLabelValues("skipped").Inc()
		return current, nil
	}

	refreshToken, err := c.tokens.RefreshToken(ctx)
	if err != nil {
		return "", normalize(0, nil, fmt.Errorf("read refresh token: %w", err))
	}
	if refreshToken == "" {
		metrics.TokenRefreshTotal.WithLabelValues("no_token").Inc()
		return "", errNoRefreshToken
	}

	tokens, err := c.requestRefresh(ctx, refreshToken)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		c.expireSession(ctx, err)
		return "", err
	}

	if err := storage.SaveTokens(ctx, c.tokens, tokens); err != nil {
		return "", normalize(0, nil, err)
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	c.log.Info("Access token refreshed", "rotated", tokens.RefreshToken != "")

	return tokens.AccessToken, nil
}

// requestRefresh calls the refresh endpoint directly, bypassing the auth interceptor.
func (c *Client) requestRefresh(ctx context.Context, refreshToken string) (domain.Tokens, error) {
	body, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return domain.Tokens{}, normalize(0, nil, fmt.Errorf("marshal refresh request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(c.refreshPath, nil), bytes.NewReader(body))
	if err != nil {
		return domain.Tokens{}, normalize(0, nil, fmt.Errorf("create refresh request: %w", err))
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Tokens{}, normalize(0, nil, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Tokens{}, normalize(resp.StatusCode, nil, fmt.Errorf("read refresh response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Tokens{}, normalize(resp.StatusCode, data, nil)
	}

	var env domain.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Tokens{}, normalize(resp.StatusCode, nil, fmt.Errorf("parse refresh response: %w", err))
	}
	if !env.Status {
		return domain.Tokens{}, EnvelopeError(resp.StatusCode, data)
	}

	var tokens domain.Tokens
	if err := json.Unmarshal(env.Payload, &tokens); err != nil || tokens.AccessToken == "" {
		return domain.Tokens{}, &Error{
			StatusCode: resp.StatusCode,
			Message:    requestFailedPrefix + "refresh response has no access token",
			Err:        err,
		}
	}

	return tokens, nil
}

// expireSession clears both tokens and fires the session-expired hook.
func (c *Client) expireSession(ctx context.Context, cause error) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.log.Error("Failed to clear session", "error", err)
	}
	metrics.SessionExpiredTotal.Inc()
	c.log.Warn("Session expired, refresh failed", "error", cause)

	if c.onSessionExpired != nil && !quietExpiry(ctx) {
		c.onSessionExpired()
	}
}
