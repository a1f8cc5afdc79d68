package oauth

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driving"
)

// callbackTimeout bounds how long the flow waits for the redirect.
const callbackTimeout = 5 * time.Minute

// Ensure Authenticator implements the interface.
var _ driving.AuthService = (*Authenticator)(nil)

// Authenticator runs the one-time interactive authorization flow and
// persists the resulting credential.
type Authenticator struct {
	config *oauth2.Config
	store  driven.TokenStore
	out    io.Writer
}

// NewAuthenticator creates an authenticator for the given OAuth app
// configuration. Progress is written to out (defaults to stdout).
func NewAuthenticator(config *oauth2.Config, store driven.TokenStore, out io.Writer) *Authenticator {
	if out == nil {
		out = os.Stdout
	}
	return &Authenticator{config: config, store: store, out: out}
}

// Authenticate opens a local callback listener on a random port, sends
// the user through Google's consent flow (offline access, forced
// consent so a refresh token is issued), exchanges the authorization
// code with PKCE and persists the token.
func (a *Authenticator) Authenticate(ctx context.Context) error {
	state := GenerateState()
	verifier := GenerateCodeVerifier()
	challenge := GenerateCodeChallenge(verifier)

	server := NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}
	defer server.Stop()

	config := *a.config
	config.RedirectURL = server.RedirectURI()

	authURL := config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	fmt.Fprintf(a.out, "Opening your browser for authorization.\nIf it does not open, visit:\n\n  %s\n\n", authURL)
	if err := OpenBrowser(authURL); err != nil {
		fmt.Fprintf(a.out, "Could not open browser: %v\n", err)
	}

	code, err := server.WaitForCode(callbackTimeout)
	if err != nil {
		return fmt.Errorf("wait for authorization: %w", err)
	}

	token, err := config.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", verifier),
	)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	stored := &domain.OAuthToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}
	if err := a.store.Save(ctx, stored); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	fmt.Fprintln(a.out, "Authorization complete. Credential saved.")
	return nil
}
