package domain

import "strings"

// AttachmentRef points at a single inbound attachment hosted by the
// messaging platform. The bytes are fetched lazily by the dispatcher.
type AttachmentRef struct {
	// URL is the platform-hosted media URL.
	URL string
	// ContentType is the content type declared by the platform.
	ContentType string
}

// InboundEvent is one webhook invocation's worth of input. It is
// ephemeral: only the ContactRecord derived from it is persisted.
type InboundEvent struct {
	// Sender identifies the sending account, e.g. "whatsapp:+15551234567".
	Sender string
	// Body is the free-text message body. May be empty.
	Body string
	// Attachment is the first attachment, if any. Additional attachments
	// are ignored; only the first is ever processed.
	Attachment *AttachmentRef
}

// HasAttachment reports whether the event carries an attachment.
func (e *InboundEvent) HasAttachment() bool {
	return e.Attachment != nil && e.Attachment.URL != ""
}

// ContentKind is the closed set of attachment categories the pipeline
// understands. It is resolved once at the dispatcher boundary from the
// declared content type and matched exhaustively after that.
type ContentKind int

const (
	// KindUnsupported is any content type with no extraction strategy.
	KindUnsupported ContentKind = iota
	// KindStructuredDoc is a paginated binary document (PDF).
	KindStructuredDoc
	// KindOfficeDoc is a paragraph-structured word-processing document.
	KindOfficeDoc
	// KindImage is any raster image, handled by OCR.
	KindImage
)

// String returns a short name for logging.
func (k ContentKind) String() string {
	switch k {
	case KindStructuredDoc:
		return "structured-doc"
	case KindOfficeDoc:
		return "office-doc"
	case KindImage:
		return "image"
	default:
		return "unsupported"
	}
}

// MIMETypeWordOOXML is the OOXML word-processing content type.
const MIMETypeWordOOXML = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// MIMETypeWordLegacy is the legacy Word content type.
const MIMETypeWordLegacy = "application/msword"

// KindForContentType resolves a declared content type to a ContentKind.
// "application/pdf" matches exactly; the two Word types map to
// KindOfficeDoc; any "image/" type maps to KindImage. Everything else,
// including "text/plain", is unsupported.
func KindForContentType(contentType string) ContentKind {
	switch {
	case contentType == "application/pdf":
		return KindStructuredDoc
	case contentType == MIMETypeWordOOXML, contentType == MIMETypeWordLegacy:
		return KindOfficeDoc
	case strings.HasPrefix(contentType, "image/"):
		return KindImage
	default:
		return KindUnsupported
	}
}
