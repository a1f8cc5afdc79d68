// Package twilio fetches platform-hosted media over HTTP. Twilio media
// URLs require HTTP Basic auth with the account SID and auth token.
package twilio

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.MediaFetcher = (*Fetcher)(nil)

// Fetcher downloads attachment bytes from Twilio media URLs.
// No per-call timeout is set beyond what the HTTP client enforces.
type Fetcher struct {
	accountSID string
	authToken  string
	client     *http.Client
}

// NewFetcher creates a fetcher authenticating with the given account
// SID and auth token. A nil client falls back to http.DefaultClient.
func NewFetcher(accountSID, authToken string, client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		accountSID: accountSID,
		authToken:  authToken,
		client:     client,
	}
}

// Fetch downloads the attachment at the given URL. All failures,
// including non-2xx statuses, wrap domain.ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrFetchFailed, err)
	}
	req.SetBasicAuth(f.accountSID, f.authToken)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d fetching media", domain.ErrFetchFailed, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrFetchFailed, err)
	}

	return payload, nil
}
