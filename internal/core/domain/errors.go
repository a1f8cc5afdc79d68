package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a content type no extractor handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrFetchFailed indicates attachment bytes could not be retrieved.
	ErrFetchFailed = errors.New("media fetch failed")

	// ErrDecodeFailed indicates a malformed PDF, DOCX or image payload.
	ErrDecodeFailed = errors.New("payload decode failed")

	// Authentication errors. These propagate and abort the current
	// request; there is no fallback write path.

	// ErrAuthRequired indicates no stored credential exists.
	// Run the interactive authorization flow to create one.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the credential has expired and cannot
	// be refreshed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrTokenRefreshFailed indicates the token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")
)
