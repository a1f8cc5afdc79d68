// Package pdf extracts plain text from paginated PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
	"github.com/arlo-labs/leadsheet/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF payloads.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Extract concatenates each page's text in page order, separated by
// newlines, with trailing whitespace trimmed. A page that fails to
// yield text is skipped; an unreadable document is a decode failure.
// An empty result from a well-formed document is not an error.
func (e *Extractor) Extract(_ context.Context, payload []byte) (text string, err error) {
	// The pdf library panics on some malformed files; treat that the
	// same as a decode failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: pdf parser panic: %v", domain.ErrDecodeFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", domain.ErrDecodeFailed, err)
	}

	var result strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			logger.Debug("pdf: skipping page %d: %v", i, err)
			continue
		}
		if pageText == "" {
			continue
		}

		result.WriteString(pageText)
		result.WriteString("\n")
	}

	return strings.TrimSpace(result.String()), nil
}
