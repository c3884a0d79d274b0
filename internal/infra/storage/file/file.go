// Package file persists admin sessions to a JSON file on the local disk,
// keyed by profile so one machine can hold sessions for several backends.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// DefaultPath returns ~/.touradmin/session.json, falling back to the working directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".touradmin", "session.json")
}

type session struct {
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type document struct {
	Profiles map[string]session `json:"profiles"`
}

// TokenStore reads and writes the session file on every call so several
// processes sharing the file observe each other's refreshes.
type TokenStore struct {
	fs      afero.Fs
	path    string
	profile string

	mu sync.Mutex
}

// NewTokenStore creates a store backed by path on fs.
func NewTokenStore(fs afero.Fs, path, profile string) *TokenStore {
	if profile == "" {
		profile = "default"
	}
	return &TokenStore{fs: fs, path: path, profile: profile}
}

func (s *TokenStore) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", err
	}
	return doc.Profiles[s.profile].AccessToken, nil
}

func (s *TokenStore) RefreshToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", err
	}
	return doc.Profiles[s.profile].RefreshToken, nil
}

func (s *TokenStore) SetAccessToken(ctx context.Context, token string) error {
	return s.update(func(sess *session) { sess.AccessToken = token })
}

func (s *TokenStore) SetRefreshToken(ctx context.Context, token string) error {
	return s.update(func(sess *session) { sess.RefreshToken = token })
}

// Clear drops the profile from the file. Other profiles are kept.
func (s *TokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	delete(doc.Profiles, s.profile)
	return s.save(doc)
}

func (s *TokenStore) update(fn func(*session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	sess := doc.Profiles[s.profile]
	fn(&sess)
	sess.UpdatedAt = time.Now()
	doc.Profiles[s.profile] = sess
	return s.save(doc)
}

func (s *TokenStore) load() (*document, error) {
	doc := &document{Profiles: make(map[string]session)}

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", s.path, err)
	}
	if doc.Profiles == nil {
		doc.Profiles = make(map[string]session)
	}
	return doc, nil
}

// save writes to a temp file and renames it over the target.
func (s *TokenStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session file: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
