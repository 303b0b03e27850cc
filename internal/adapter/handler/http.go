package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/hive-corporation/cwp-forwarder/internal/core/domain"
)

// RestHandler exposes the SNS processing pipeline over HTTP for environments
// that deliver the notification envelope directly instead of through Lambda.
type RestHandler struct {
	sns *SNSHandler
}

func NewRestHandler(sns *SNSHandler) *RestHandler {
	return &RestHandler{sns: sns}
}

// Health check endpoint
func (h *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "cwp-forwarder",
	}
	writeJSON(w, http.StatusOK, response)
}

// CWPWebhook receives an SNS-shaped envelope carrying one CWP finding.
// Business outcomes (discarded, unsupported) return 200 with the report;
// structural failures return 400 and ingestion failures 502.
func (h *RestHandler) CWPWebhook(w http.ResponseWriter, r *http.Request) {
	var envelope events.SNSEvent
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		log.Printf("❌ Failed to decode notification envelope: %v", err)
		writeError(w, http.StatusBadRequest, "invalid JSON envelope")
		return
	}

	report, err := h.sns.Handle(r.Context(), envelope)
	if err != nil {
		var malformed *domain.MalformedInputError
		var ingestion *domain.IngestionError
		switch {
		case errors.As(err, &malformed):
			writeError(w, http.StatusBadRequest, malformed.Error())
		case errors.As(err, &ingestion):
			writeError(w, http.StatusBadGateway, ingestion.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
