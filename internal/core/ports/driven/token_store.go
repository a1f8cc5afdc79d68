package driven

import (
	"context"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
)

// TokenStore persists the OAuth credential for the sheet backend.
//
// The store is read-then-possibly-rewritten without locking; two
// concurrent refreshes can race and the later write wins. Known gap.
type TokenStore interface {
	// Load reads the stored token. Returns domain.ErrAuthRequired if no
	// token has ever been saved.
	Load(ctx context.Context) (*domain.OAuthToken, error)

	// Save persists the token, overwriting any previous one.
	Save(ctx context.Context, token *domain.OAuthToken) error
}
