package auth

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
	"github.com/arlo-labs/leadsheet/internal/logger"
)

// Scopes requested from Google: row appends plus access to the
// spreadsheets this app creates (name lookup and sharing).
var Scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive.file",
}

// Ensure GoogleProvider implements the interface.
var _ driven.TokenProvider = (*GoogleProvider)(nil)

// GoogleProvider yields token sources backed by the persisted
// credential, refreshing through Google's token endpoint when the
// access token has expired and persisting the renewed credential.
type GoogleProvider struct {
	config *oauth2.Config
	store  driven.TokenStore
}

// NewGoogleProvider builds a provider from an installed-app client
// secrets JSON file (the credentials.json downloaded from the Google
// Cloud console).
func NewGoogleProvider(secretsPath string, store driven.TokenStore) (*GoogleProvider, error) {
	data, err := os.ReadFile(secretsPath)
	if err != nil {
		return nil, fmt.Errorf("read client secrets %s: %w", secretsPath, err)
	}

	config, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse client secrets: %w", err)
	}

	return &GoogleProvider{config: config, store: store}, nil
}

// Config exposes the oauth2 configuration for the interactive
// authorization flow.
func (p *GoogleProvider) Config() *oauth2.Config {
	return p.config
}

// Store exposes the underlying token store.
func (p *GoogleProvider) Store() driven.TokenStore {
	return p.store
}

// TokenSource loads the persisted credential and returns a source for
// it. An expired credential with a refresh token is refreshed eagerly
// and the renewed credential persisted before the source is returned;
// later in-flight refreshes are persisted by the wrapping source. An
// expired credential without a refresh token is unusable.
func (p *GoogleProvider) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	stored, err := p.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	token := toOAuth2(stored)
	if stored.IsExpired() {
		if !stored.HasRefreshToken() {
			return nil, fmt.Errorf("%w: token expired and no refresh token stored", domain.ErrAuthExpired)
		}

		refreshed, err := p.config.TokenSource(ctx, token).Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
		}
		if err := p.store.Save(ctx, fromOAuth2(refreshed)); err != nil {
			return nil, fmt.Errorf("save refreshed token: %w", err)
		}
		logger.Debug("auth: refreshed access token, expiry %s", refreshed.Expiry)
		token = refreshed
	}

	return &persistingSource{
		inner: p.config.TokenSource(ctx, token),
		store: p.store,
		last:  token.AccessToken,
		ctx:   ctx,
	}, nil
}

// IsAuthenticated reports whether a usable credential is stored.
func (p *GoogleProvider) IsAuthenticated(ctx context.Context) bool {
	stored, err := p.store.Load(ctx)
	return err == nil && stored.IsValid()
}

// persistingSource persists tokens renewed by the underlying oauth2
// source mid-request, so the next process start does not re-refresh.
type persistingSource struct {
	inner oauth2.TokenSource
	store driven.TokenStore
	ctx   context.Context

	mu   sync.Mutex
	last string
}

// Token implements oauth2.TokenSource.
func (s *persistingSource) Token() (*oauth2.Token, error) {
	token, err := s.inner.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
	}

	s.mu.Lock()
	changed := token.AccessToken != s.last
	s.last = token.AccessToken
	s.mu.Unlock()

	if changed {
		if err := s.store.Save(s.ctx, fromOAuth2(token)); err != nil {
			logger.Warn("auth: persisting refreshed token: %v", err)
		}
	}

	return token, nil
}

func toOAuth2(t *domain.OAuthToken) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
	}
}

func fromOAuth2(t *oauth2.Token) *domain.OAuthToken {
	return &domain.OAuthToken{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
	}
}
