package driven

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenProvider yields authorized token sources for Google API clients.
// Implementations load the persisted credential, refresh it through the
// identity provider when expired, and persist the renewed credential
// before returning.
type TokenProvider interface {
	// TokenSource returns a token source backed by the stored
	// credential. Returns domain.ErrAuthRequired when no credential
	// exists and no interactive authorization has been run.
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)

	// IsAuthenticated reports whether a usable credential is stored.
	IsAuthenticated(ctx context.Context) bool
}
