package driven

import "context"

// Extractor produces best-effort plain text from a byte payload of a
// specific format. Each extractor handles specific MIME types.
//
// Extractors return real errors (wrapping domain.ErrDecodeFailed);
// collapsing a failure to the user-facing sentinel string is the
// dispatcher's job.
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Extract converts the payload to plain text. An empty result with
	// a nil error is a valid outcome (a blank but well-formed document).
	Extract(ctx context.Context, payload []byte) (string, error)
}
