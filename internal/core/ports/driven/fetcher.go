package driven

import "context"

// MediaFetcher retrieves attachment bytes from the messaging platform.
// Failures wrap domain.ErrFetchFailed.
type MediaFetcher interface {
	// Fetch downloads the attachment at the given URL.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
