package handler

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/hive-corporation/cwp-forwarder/internal/core/domain"
	"github.com/hive-corporation/cwp-forwarder/internal/core/forwarder"
)

// SNSHandler unwraps the SNS notification envelope and runs one finding
// through the forwarder. Both the Lambda entrypoint and the HTTP receiver
// route through here.
type SNSHandler struct {
	forwarder *forwarder.Forwarder
}

func NewSNSHandler(fwd *forwarder.Forwarder) *SNSHandler {
	return &SNSHandler{forwarder: fwd}
}

// Handle processes the first record's notification message. Structural
// failures (empty envelope, bad JSON, missing required field) surface as
// MalformedInputError; business discards come back as success=false reports.
func (h *SNSHandler) Handle(ctx context.Context, event events.SNSEvent) (domain.OutcomeReport, error) {
	timer := StartTimer()
	defer timer.ObserveDuration()

	invocationID := uuid.NewString()

	if len(event.Records) == 0 {
		RecordEvent("malformed")
		return domain.OutcomeReport{}, &domain.MalformedInputError{Reason: "envelope contains no records"}
	}

	message := event.Records[0].SNS.Message
	log.Printf("📥 [%s] Received CWP notification (%d bytes)", invocationID, len(message))

	var finding domain.Finding
	if err := json.Unmarshal([]byte(message), &finding); err != nil {
		RecordEvent("malformed")
		return domain.OutcomeReport{}, &domain.MalformedInputError{Reason: "notification message is not a valid finding", Err: err}
	}

	if err := finding.Validate(); err != nil {
		RecordEvent("malformed")
		return domain.OutcomeReport{}, err
	}

	report, err := h.forwarder.Process(ctx, &finding)
	if err != nil {
		RecordEvent("error")
		log.Printf("❌ [%s] Processing failed: %v", invocationID, err)
		return domain.OutcomeReport{}, err
	}

	RecordEvent(classifyOutcome(report))
	log.Printf("📤 [%s] Report: success=%t eventType=%q riskScore=%q comment=%q",
		invocationID, report.Success, report.EventType, report.RiskScore, report.Comment)

	return report, nil
}

func classifyOutcome(report domain.OutcomeReport) string {
	switch {
	case report.Success:
		return "forwarded"
	case strings.HasPrefix(report.Comment, "Discarded"):
		return "discarded"
	default:
		return "unsupported"
	}
}
