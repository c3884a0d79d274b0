package file

import (
	"context"
	"testing"

	"github.com/spf13/afero"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	s := NewTokenStore(fs, "/home/admin/.touradmin/session.json", "")

	// Missing file reads as an empty session
	token, err := s.AccessToken(ctx)
	if err != nil {
		t.Fatalf("AccessToken on missing file failed: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}

	if err := s.SetAccessToken(ctx, "access-1"); err != nil {
		t.Fatalf("SetAccessToken failed: %v", err)
	}
	if err := s.SetRefreshToken(ctx, "refresh-1"); err != nil {
		t.Fatalf("SetRefreshToken failed: %v", err)
	}

	// A second store on the same file sees the session
	other := NewTokenStore(fs, "/home/admin/.touradmin/session.json", "default")
	got, err := other.AccessToken(ctx)
	if err != nil {
		t.Fatalf("AccessToken failed: %v", err)
	}
	if got != "access-1" {
		t.Errorf("expected access-1, got %q", got)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	access, _ := other.AccessToken(ctx)
	refresh, _ := other.RefreshToken(ctx)
	if access != "" || refresh != "" {
		t.Errorf("expected empty tokens after Clear, got %q / %q", access, refresh)
	}
}

func TestTokenStore_ProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	staging := NewTokenStore(fs, "/tmp/session.json", "staging")
	prod := NewTokenStore(fs, "/tmp/session.json", "prod")

	_ = staging.SetAccessToken(ctx, "staging-token")
	_ = prod.SetAccessToken(ctx, "prod-token")

	if err := staging.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	got, _ := prod.AccessToken(ctx)
	if got != "prod-token" {
		t.Errorf("expected prod session to survive, got %q", got)
	}
}

func TestTokenStore_FilePermissions(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	s := NewTokenStore(fs, "/tmp/session.json", "default")

	if err := s.SetAccessToken(ctx, "secret"); err != nil {
		t.Fatalf("SetAccessToken failed: %v", err)
	}

	info, err := fs.Stat("/tmp/session.json")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestTokenStore_CorruptFile(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/tmp/session.json", []byte("{not json"), 0o600)

	s := NewTokenStore(fs, "/tmp/session.json", "default")
	if _, err := s.AccessToken(ctx); err == nil {
		t.Error("expected error for corrupt session file")
	}
}
