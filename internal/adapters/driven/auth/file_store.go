// Package auth provides the Google credential store: a JSON token file
// on disk plus a token provider that refreshes and re-persists the
// credential transparently.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
)

// Ensure FileTokenStore implements the interface.
var _ driven.TokenStore = (*FileTokenStore)(nil)

// FileTokenStore persists the OAuth token as a JSON file. The file is
// created during the interactive authorization flow and overwritten on
// every refresh. Reads and writes are not locked against each other;
// concurrent refreshes race and the later write wins.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store writing to the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Path returns the token file location.
func (s *FileTokenStore) Path() string {
	return s.path
}

// Load reads the stored token. A missing file means the interactive
// authorization flow has never run.
func (s *FileTokenStore) Load(_ context.Context) (*domain.OAuthToken, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no token file at %s", domain.ErrAuthRequired, s.path)
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var token domain.OAuthToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}

	return &token, nil
}

// Save persists the token with owner-only permissions, overwriting any
// previous credential.
func (s *FileTokenStore) Save(_ context.Context, token *domain.OAuthToken) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	return nil
}
