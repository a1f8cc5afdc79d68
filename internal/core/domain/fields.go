package domain

import (
	"regexp"
	"strings"
)

// ContactFields holds the best-effort fields parsed out of free text.
// Absent matches are empty strings, never errors.
type ContactFields struct {
	Name  string
	Email string
	Phone string
}

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)

	// An optional leading '+', a digit, then seven or more
	// digits/spaces/hyphens ending in a digit. Also matches non-phone
	// numeric runs such as date-and-zip combinations.
	phonePattern = regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`)
)

// ParseFields derives name, email and phone from free text. It is a
// total function: empty input yields empty fields. Only the leftmost
// match per pattern is used.
func ParseFields(text string) ContactFields {
	return ContactFields{
		Name:  parseName(text),
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
	}
}

// parseName joins the first three whitespace-delimited tokens of the
// trimmed text with single spaces.
func parseName(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	return strings.Join(tokens, " ")
}
