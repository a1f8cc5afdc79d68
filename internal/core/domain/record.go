package domain

// ContactRecord is the flat row appended to the backing sheet. It is
// constructed once per event, appended once, then discarded.
type ContactRecord struct {
	// Sender is the sending account identifier, verbatim from the event.
	Sender string
	// Name is the derived name: the first three whitespace-delimited
	// tokens of the source text.
	Name string
	// Email is the first email-looking substring, or empty.
	Email string
	// Phone is the first phone-looking substring, or empty.
	Phone string
	// RawMessage is the text the fields were derived from: either the
	// original body or the extracted attachment text, never both.
	RawMessage string
}

// NewContactRecord derives a record from the resolved text of an event.
func NewContactRecord(sender, text string) ContactRecord {
	fields := ParseFields(text)
	return ContactRecord{
		Sender:     sender,
		Name:       fields.Name,
		Email:      fields.Email,
		Phone:      fields.Phone,
		RawMessage: text,
	}
}

// Row returns the record as a sheet row in fixed column order.
func (r ContactRecord) Row() []any {
	return []any{r.Sender, r.Name, r.Email, r.Phone, r.RawMessage}
}
