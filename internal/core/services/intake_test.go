package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
)

// mockFetcher is a test double for driven.MediaFetcher.
type mockFetcher struct {
	payload []byte
	err     error
	calls   int
	lastURL string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	m.calls++
	m.lastURL = url
	return m.payload, m.err
}

// mockAppender is a test double for driven.RowAppender.
type mockAppender struct {
	err     error
	records []domain.ContactRecord
}

func (m *mockAppender) Append(_ context.Context, record domain.ContactRecord) error {
	m.records = append(m.records, record)
	return m.err
}

// mockExtractor is a test double for driven.Extractor.
type mockExtractor struct {
	text  string
	err   error
	calls int
}

func (m *mockExtractor) SupportedMIMETypes() []string { return nil }

func (m *mockExtractor) Extract(_ context.Context, _ []byte) (string, error) {
	m.calls++
	return m.text, m.err
}

type fixture struct {
	fetcher    *mockFetcher
	appender   *mockAppender
	structured *mockExtractor
	office     *mockExtractor
	image      *mockExtractor
	service    *IntakeService
}

func newFixture() *fixture {
	f := &fixture{
		fetcher:    &mockFetcher{payload: []byte("payload")},
		appender:   &mockAppender{},
		structured: &mockExtractor{},
		office:     &mockExtractor{},
		image:      &mockExtractor{},
	}
	f.service = NewIntakeService(f.fetcher, f.appender, f.structured, f.office, f.image)
	return f
}

func pdfEvent(url string) domain.InboundEvent {
	return domain.InboundEvent{
		Sender: "whatsapp:+15551234567",
		Attachment: &domain.AttachmentRef{
			URL:         url,
			ContentType: "application/pdf",
		},
	}
}

func TestHandle_BodyOnly(t *testing.T) {
	f := newFixture()

	ack, err := f.service.Handle(context.Background(), domain.InboundEvent{
		Sender: "whatsapp:+15551234567",
		Body:   "Jane Q Public, jane.public@example.com, +1 555-123-4567",
	})
	require.NoError(t, err)
	assert.Equal(t, AckMessage, ack)

	require.Len(t, f.appender.records, 1)
	record := f.appender.records[0]
	assert.Equal(t, "Jane Q Public, jane.public@example.com, +1 555-123-4567", record.RawMessage)
	assert.Equal(t, "jane.public@example.com", record.Email)
	assert.Equal(t, "+1 555-123-4567", record.Phone)
	assert.Zero(t, f.fetcher.calls, "no attachment, no fetch")
}

func TestHandle_AttachmentReplacesBody(t *testing.T) {
	f := newFixture()
	f.structured.text = "Contact: John Doe john@doe.com +15559998888"

	event := pdfEvent("https://api.twilio.example/media/0")
	event.Body = "original body that must not leak through"

	ack, err := f.service.Handle(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, AckMessage, ack)

	require.Len(t, f.appender.records, 1)
	record := f.appender.records[0]
	assert.Equal(t, "whatsapp:+15551234567", record.Sender)
	assert.Equal(t, "Contact: John Doe", record.Name)
	assert.Equal(t, "john@doe.com", record.Email)
	assert.Equal(t, "+15559998888", record.Phone)
	assert.Equal(t, "Contact: John Doe john@doe.com +15559998888", record.RawMessage)
	assert.Equal(t, "https://api.twilio.example/media/0", f.fetcher.lastURL)
}

func TestHandle_KindRouting(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		extractor   func(f *fixture) *mockExtractor
	}{
		{"pdf", "application/pdf", func(f *fixture) *mockExtractor { return f.structured }},
		{"docx", domain.MIMETypeWordOOXML, func(f *fixture) *mockExtractor { return f.office }},
		{"legacy word", domain.MIMETypeWordLegacy, func(f *fixture) *mockExtractor { return f.office }},
		{"image", "image/png", func(f *fixture) *mockExtractor { return f.image }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.structured.text = "x"
			f.office.text = "x"
			f.image.text = "x"

			event := pdfEvent("https://api.twilio.example/media/0")
			event.Attachment.ContentType = tc.contentType

			_, err := f.service.Handle(context.Background(), event)
			require.NoError(t, err)
			assert.Equal(t, 1, tc.extractor(f).calls)
		})
	}
}

func TestHandle_UnsupportedKind(t *testing.T) {
	f := newFixture()

	event := pdfEvent("https://api.twilio.example/media/0")
	event.Attachment.ContentType = "text/plain"

	_, err := f.service.Handle(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, f.appender.records, 1)
	assert.Equal(t, SentinelUnsupported, f.appender.records[0].RawMessage)
	assert.Zero(t, f.fetcher.calls, "unsupported kinds are not fetched")
	assert.Zero(t, f.structured.calls)
	assert.Zero(t, f.office.calls)
	assert.Zero(t, f.image.calls)
}

func TestHandle_FetchFailureSentinels(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"application/pdf", SentinelPDFFailed},
		{domain.MIMETypeWordOOXML, SentinelDocxFailed},
		{"image/jpeg", SentinelImageFailed},
	}

	for _, tc := range tests {
		t.Run(tc.contentType, func(t *testing.T) {
			f := newFixture()
			f.fetcher.err = domain.ErrFetchFailed

			event := pdfEvent("https://api.twilio.example/media/0")
			event.Attachment.ContentType = tc.contentType

			ack, err := f.service.Handle(context.Background(), event)
			require.NoError(t, err, "fetch failures never abort the request")
			assert.Equal(t, AckMessage, ack)

			require.Len(t, f.appender.records, 1)
			assert.Equal(t, tc.want, f.appender.records[0].RawMessage)
		})
	}
}

func TestHandle_ExtractFailureSentinels(t *testing.T) {
	tests := []struct {
		contentType string
		setup       func(f *fixture)
		want        string
	}{
		{"application/pdf", func(f *fixture) { f.structured.err = domain.ErrDecodeFailed }, SentinelPDFFailed},
		{domain.MIMETypeWordOOXML, func(f *fixture) { f.office.err = domain.ErrDecodeFailed }, SentinelDocxFailed},
		{"image/png", func(f *fixture) { f.image.err = domain.ErrDecodeFailed }, SentinelImageFailed},
	}

	for _, tc := range tests {
		t.Run(tc.contentType, func(t *testing.T) {
			f := newFixture()
			tc.setup(f)

			event := pdfEvent("https://api.twilio.example/media/0")
			event.Attachment.ContentType = tc.contentType

			_, err := f.service.Handle(context.Background(), event)
			require.NoError(t, err)

			require.Len(t, f.appender.records, 1)
			assert.Equal(t, tc.want, f.appender.records[0].RawMessage)
		})
	}
}

func TestHandle_EmptyExtractionSentinels(t *testing.T) {
	t.Run("empty docx", func(t *testing.T) {
		f := newFixture()

		event := pdfEvent("https://api.twilio.example/media/0")
		event.Attachment.ContentType = domain.MIMETypeWordOOXML

		_, err := f.service.Handle(context.Background(), event)
		require.NoError(t, err)
		assert.Equal(t, SentinelDocxEmpty, f.appender.records[0].RawMessage)
	})

	t.Run("empty image", func(t *testing.T) {
		f := newFixture()

		event := pdfEvent("https://api.twilio.example/media/0")
		event.Attachment.ContentType = "image/png"

		_, err := f.service.Handle(context.Background(), event)
		require.NoError(t, err)
		assert.Equal(t, SentinelImageEmpty, f.appender.records[0].RawMessage)
	})

	t.Run("empty pdf is not an error", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.Handle(context.Background(), pdfEvent("https://api.twilio.example/media/0"))
		require.NoError(t, err)
		assert.Equal(t, "", f.appender.records[0].RawMessage)
	})
}

func TestHandle_AppendFailurePropagates(t *testing.T) {
	f := newFixture()
	f.appender.err = domain.ErrAuthRequired

	ack, err := f.service.Handle(context.Background(), domain.InboundEvent{
		Sender: "whatsapp:+15551234567",
		Body:   "hello",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAuthRequired))
	assert.Empty(t, ack)
}

func TestHandle_Stateless(t *testing.T) {
	f := newFixture()
	f.structured.text = "same text every time"

	event := pdfEvent("https://api.twilio.example/media/0")

	_, err := f.service.Handle(context.Background(), event)
	require.NoError(t, err)
	_, err = f.service.Handle(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, f.appender.records, 2)
	assert.Equal(t, f.appender.records[0], f.appender.records[1])
}
