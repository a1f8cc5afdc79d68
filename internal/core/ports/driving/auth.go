package driving

import "context"

// AuthService runs the one-time interactive authorization flow for the
// sheet backend. It is an explicit bootstrap operation, not a side
// effect of getting a client: the serving path fails fast with
// domain.ErrAuthRequired instead of opening a browser.
type AuthService interface {
	// Authenticate opens a local callback listener, sends the user
	// through the provider's consent flow, exchanges the authorization
	// code and persists the resulting credential. Blocks until the flow
	// completes, fails or the context is cancelled.
	Authenticate(ctx context.Context) error
}
