package services

import (
	"context"
	"fmt"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driving"
	"github.com/arlo-labs/leadsheet/internal/logger"
)

// Sentinel strings returned in place of extracted text when a strategy
// fails or yields nothing. These are user-facing: they end up in the
// appended row's raw-message column.
const (
	// AckMessage is the confirmation sent back to the sender.
	AckMessage = "Message/file received and parsed successfully!"

	// SentinelPDFFailed replaces the text of an unreadable PDF.
	SentinelPDFFailed = "[Could not extract PDF text]"

	// SentinelDocxFailed replaces the text of an unreadable DOCX.
	SentinelDocxFailed = "Sorry, I couldn’t read the DOCX file properly."

	// SentinelDocxEmpty stands in for a DOCX with no text.
	SentinelDocxEmpty = "(No text found in document.)"

	// SentinelImageFailed replaces the text of an unreadable image.
	SentinelImageFailed = "Sorry, I couldn’t extract text from the image."

	// SentinelImageEmpty stands in for an image with no detectable text.
	SentinelImageEmpty = "(No text detected in image.)"

	// SentinelUnsupported is returned for content types with no
	// extraction strategy.
	SentinelUnsupported = "Unsupported file type. Please send a text, PDF, DOCX, or image."
)

// Ensure IntakeService implements the interface.
var _ driving.IntakeService = (*IntakeService)(nil)

// IntakeService is the intake dispatcher. It is stateless across
// invocations; every Handle call is independent.
type IntakeService struct {
	fetcher  driven.MediaFetcher
	appender driven.RowAppender

	structured driven.Extractor
	office     driven.Extractor
	image      driven.Extractor
}

// NewIntakeService creates an intake service wired to the given
// fetcher, appender and per-kind extractors.
func NewIntakeService(
	fetcher driven.MediaFetcher,
	appender driven.RowAppender,
	structured, office, image driven.Extractor,
) *IntakeService {
	return &IntakeService{
		fetcher:    fetcher,
		appender:   appender,
		structured: structured,
		office:     office,
		image:      image,
	}
}

// Handle processes one inbound event. If an attachment is present its
// extracted text replaces the body entirely; otherwise the body is
// used as-is. The derived record is appended as one row and the fixed
// acknowledgment returned. Only the append can fail.
func (s *IntakeService) Handle(ctx context.Context, event domain.InboundEvent) (string, error) {
	text := event.Body
	if event.HasAttachment() {
		text = s.extractAttachment(ctx, *event.Attachment)
	}

	record := domain.NewContactRecord(event.Sender, text)
	logger.Debug("intake: record for %s: name=%q email=%q phone=%q",
		record.Sender, record.Name, record.Email, record.Phone)

	if err := s.appender.Append(ctx, record); err != nil {
		return "", fmt.Errorf("append record: %w", err)
	}

	return AckMessage, nil
}

// extractAttachment resolves the attachment's content kind and runs
// the matching strategy. This is the boundary where fetch and decode
// errors collapse into sentinel strings: nothing past here ever sees
// an extraction failure.
func (s *IntakeService) extractAttachment(ctx context.Context, att domain.AttachmentRef) string {
	kind := domain.KindForContentType(att.ContentType)
	logger.Debug("intake: attachment %s resolved to kind %s", att.URL, kind)

	if kind == domain.KindUnsupported {
		return SentinelUnsupported
	}

	payload, err := s.fetcher.Fetch(ctx, att.URL)
	if err != nil {
		logger.Warn("intake: fetching %s: %v", att.URL, err)
		return failureSentinel(kind)
	}

	var text string
	switch kind {
	case domain.KindStructuredDoc:
		text, err = s.structured.Extract(ctx, payload)
	case domain.KindOfficeDoc:
		text, err = s.office.Extract(ctx, payload)
	case domain.KindImage:
		text, err = s.image.Extract(ctx, payload)
	}
	if err != nil {
		logger.Warn("intake: extracting %s attachment: %v", kind, err)
		return failureSentinel(kind)
	}

	if text == "" {
		switch kind {
		case domain.KindOfficeDoc:
			return SentinelDocxEmpty
		case domain.KindImage:
			return SentinelImageEmpty
		}
		// An empty structured document is not an error.
	}

	return text
}

// failureSentinel maps a content kind to its failure sentinel.
func failureSentinel(kind domain.ContentKind) string {
	switch kind {
	case domain.KindStructuredDoc:
		return SentinelPDFFailed
	case domain.KindOfficeDoc:
		return SentinelDocxFailed
	case domain.KindImage:
		return SentinelImageFailed
	default:
		return SentinelUnsupported
	}
}
