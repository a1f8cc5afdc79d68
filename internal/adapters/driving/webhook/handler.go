// Package webhook is the inbound HTTP adapter: it translates Twilio's
// form-encoded messaging webhooks into intake events and renders the
// TwiML acknowledgment.
package webhook

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
	"github.com/arlo-labs/leadsheet/internal/core/ports/driving"
	"github.com/arlo-labs/leadsheet/internal/logger"
)

// Handler serves the messaging webhook.
type Handler struct {
	intake driving.IntakeService
}

// NewHandler creates a webhook handler backed by the intake service.
func NewHandler(intake driving.IntakeService) *Handler {
	return &Handler{intake: intake}
}

// Router returns the HTTP router: POST /whatsapp for the webhook and
// GET /health for liveness checks.
func (h *Handler) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/whatsapp", h.HandleMessage).Methods(http.MethodPost)
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	return router
}

// HandleMessage processes one inbound message webhook. Only the first
// attachment (MediaUrl0) is read, even when NumMedia reports more.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	requestID := uuid.New().String()
	event := domain.InboundEvent{
		Sender: r.PostFormValue("From"),
		Body:   r.PostFormValue("Body"),
	}

	numMedia, _ := strconv.Atoi(r.PostFormValue("NumMedia"))
	if numMedia > 0 {
		event.Attachment = &domain.AttachmentRef{
			URL:         r.PostFormValue("MediaUrl0"),
			ContentType: r.PostFormValue("MediaContentType0"),
		}
		logger.Debug("webhook %s: attachment %s (%s)", requestID, event.Attachment.URL, event.Attachment.ContentType)
	}

	logger.Info("webhook %s: message from %s", requestID, event.Sender)

	ack, err := h.intake.Handle(r.Context(), event)
	if err != nil {
		logger.Warn("webhook %s: intake failed: %v", requestID, err)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}

	body, err := twiML(ack)
	if err != nil {
		http.Error(w, "failed to render response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
