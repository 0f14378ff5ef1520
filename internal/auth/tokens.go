// Package auth plumbs host-supplied Google OAuth credentials into a token
// source. The authorization flow itself belongs to the host; this package
// only persists tokens and refreshes them against Google's token endpoint.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/seoscope/gsc-mcp/internal/common"
)

// ScopeWebmasters is the Search Console API scope.
const ScopeWebmasters = "https://www.googleapis.com/auth/webmasters"

// ErrNoToken is returned when the token file is missing or unreadable.
var ErrNoToken = errors.New("no stored token")

// FileTokenStore persists an oauth2.Token to a JSON file.
type FileTokenStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileTokenStore creates a token store that persists to the given path.
// The directory is created automatically on first write.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// GetToken reads the stored token from disk.
// Returns ErrNoToken if the file is missing or corrupt.
func (s *FileTokenStore) GetToken() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoToken
		}
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, ErrNoToken // corrupt file, treat as absent
	}
	return &token, nil
}

// SaveToken writes the token to disk with 0600 permissions.
func (s *FileTokenStore) SaveToken(token *oauth2.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// NewTokenSource builds a token source from host-supplied credentials.
// A bare access token yields a static source. Otherwise a refresh token
// (from config or the token file) plus client credentials drive Google's
// token endpoint, and refreshed tokens are written back to the store.
func NewTokenSource(ctx context.Context, cfg common.OAuthConfig) (oauth2.TokenSource, error) {
	if cfg.AccessToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken}), nil
	}

	store := NewFileTokenStore(cfg.TokenFile)
	token, err := store.GetToken()
	if err != nil {
		if !errors.Is(err, ErrNoToken) {
			return nil, err
		}
		token = &oauth2.Token{}
	}
	if cfg.RefreshToken != "" {
		token.RefreshToken = cfg.RefreshToken
	}
	if token.RefreshToken == "" {
		return nil, fmt.Errorf("no credentials: set an access token, a refresh token, or a token file")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("client_id and client_secret are required for token refresh")
	}

	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{ScopeWebmasters},
	}

	return &persistingSource{
		src:   conf.TokenSource(ctx, token),
		store: store,
		last:  token.AccessToken,
	}, nil
}

// persistingSource writes refreshed tokens back to the store so the next
// process start does not burn a refresh round trip.
type persistingSource struct {
	src   oauth2.TokenSource
	store *FileTokenStore
	mu    sync.Mutex
	last  string
}

func (s *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		// Persistence failure is not fatal; the in-memory token still works.
		_ = s.store.SaveToken(tok)
	}
	return tok, nil
}
