package driving

import (
	"context"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
)

// IntakeService processes one inbound event start to finish: attachment
// extraction, field normalization and the row append. Each invocation
// is stateless and independent.
type IntakeService interface {
	// Handle processes the event and returns the acknowledgment text to
	// send back to the sender. An error means the record could not be
	// appended (typically an authentication failure); extraction
	// problems never surface here.
	Handle(ctx context.Context, event domain.InboundEvent) (string, error)
}
