package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driven"
)

func TestSupportedMIMETypes(t *testing.T) {
	e := New()
	mimeTypes := e.SupportedMIMETypes()

	require.Len(t, mimeTypes, 1)
	assert.Contains(t, mimeTypes, "application/pdf")
}

func TestExtract_NotAPDF(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), []byte("plain text, no pdf header"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailed)
	assert.Empty(t, text)
}

func TestExtract_EmptyPayload(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailed)
	assert.Empty(t, text)
}

func TestExtract_TruncatedPDF(t *testing.T) {
	e := New()

	// A valid header with a mangled body must surface as a decode
	// failure, not a panic.
	payload := []byte("%PDF-1.7\n1 0 obj\n<< garbage")

	text, err := e.Extract(context.Background(), payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecodeFailed)
	assert.Empty(t, text)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Extractor = (*Extractor)(nil)
}
