package redis

import (
	"context"
	"os"
	"testing"
	"time"
)

// Requires a running Redis, e.g. TOURADMIN_TEST_REDIS_URL=redis://localhost:6379/15
func TestTokenStore_Live(t *testing.T) {
	url := os.Getenv("TOURADMIN_TEST_REDIS_URL")
	if url == "" {
		t.Skip("TOURADMIN_TEST_REDIS_URL not set")
	}

	client, err := NewClient(Config{URL: url})
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	s := NewTokenStore(client, "test-"+time.Now().Format("150405.000"), time.Minute)
	defer s.Clear(ctx)

	if err := s.SetAccessToken(ctx, "access-1"); err != nil {
		t.Fatalf("SetAccessToken failed: %v", err)
	}
	if err := s.SetRefreshToken(ctx, "refresh-1"); err != nil {
		t.Fatalf("SetRefreshToken failed: %v", err)
	}

	access, err := s.AccessToken(ctx)
	if err != nil || access != "access-1" {
		t.Errorf("expected access-1, got %q (err=%v)", access, err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	refresh, err := s.RefreshToken(ctx)
	if err != nil || refresh != "" {
		t.Errorf("expected empty refresh token after Clear, got %q (err=%v)", refresh, err)
	}
}

func TestSessionKey(t *testing.T) {
	if got := sessionKey("staging"); got != "touradmin:session:staging" {
		t.Errorf("unexpected key %q", got)
	}
}
