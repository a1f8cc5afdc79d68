package webhook

import (
	"encoding/xml"
	"fmt"
)

// messagingResponse is the TwiML document Twilio expects back from a
// messaging webhook.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// twiML renders the acknowledgment message as a TwiML document.
func twiML(message string) ([]byte, error) {
	body, err := xml.Marshal(messagingResponse{Message: message})
	if err != nil {
		return nil, fmt.Errorf("marshal twiml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
