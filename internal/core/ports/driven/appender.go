package driven

import (
	"context"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
)

// RowAppender appends contact records to the backing store. The target
// spreadsheet is fixed at construction; each record becomes one row on
// the first sheet.
type RowAppender interface {
	// Append writes the record as a single row. Authentication failures
	// wrap domain.ErrAuthRequired or domain.ErrTokenRefreshFailed and
	// abort the caller's request.
	Append(ctx context.Context, record domain.ContactRecord) error
}
