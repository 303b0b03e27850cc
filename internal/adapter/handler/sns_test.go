package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/hive-corporation/cwp-forwarder/internal/core/domain"
	"github.com/hive-corporation/cwp-forwarder/internal/core/forwarder"
)

type fakeIngestor struct {
	calls    int
	failWith error
}

func (f *fakeIngestor) Ingest(ctx context.Context, payload []byte, logType string) error {
	f.calls++
	return f.failWith
}

const alertMessage = `{"score":"8","objectType":"Alert","title":"T","createdDate":"2024-01-01T00:00:00Z","accountVendor":"V","accountIds":["A1"],"objectPortalURL":"http://x"}`

func snsEvent(message string) events.SNSEvent {
	return events.SNSEvent{
		Records: []events.SNSEventRecord{
			{SNS: events.SNSEntity{Message: message}},
		},
	}
}

func newTestHandler(scores []string, ingestor *fakeIngestor) *SNSHandler {
	fwd := forwarder.New(domain.NewScoreFilter(scores), ingestor, "")
	return NewSNSHandler(fwd)
}

func TestHandle_ForwardsAllowedAlert(t *testing.T) {
	ingestor := &fakeIngestor{}
	h := newTestHandler([]string{"7", "8", "9"}, ingestor)

	report, err := h.Handle(context.Background(), snsEvent(alertMessage))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := domain.OutcomeReport{Success: true, EventType: "Alert", RiskScore: "8", Comment: ""}
	if report != want {
		t.Errorf("Report mismatch: got %+v, want %+v", report, want)
	}
	if ingestor.calls != 1 {
		t.Errorf("Expected one POST, got %d", ingestor.calls)
	}
}

func TestHandle_DiscardsFilteredAlert(t *testing.T) {
	ingestor := &fakeIngestor{}
	h := newTestHandler([]string{"1", "2"}, ingestor)

	report, err := h.Handle(context.Background(), snsEvent(alertMessage))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := domain.OutcomeReport{
		Success:   false,
		EventType: "Alert",
		RiskScore: "8",
		Comment:   "Discarded. Risk score did not meet threshold requirements.",
	}
	if report != want {
		t.Errorf("Report mismatch: got %+v, want %+v", report, want)
	}
	if ingestor.calls != 0 {
		t.Errorf("Expected no POST, got %d", ingestor.calls)
	}
}

func TestHandle_UnsupportedObjectType(t *testing.T) {
	ingestor := &fakeIngestor{}
	h := newTestHandler([]string{"8"}, ingestor)

	message := `{"score":"8","objectType":"Unknown","accountVendor":"V","accountIds":["A1"]}`
	report, err := h.Handle(context.Background(), snsEvent(message))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if report.Success {
		t.Error("Expected success=false")
	}
	if report.Comment != "Alert (objectType) not supported: Unknown" {
		t.Errorf("Unexpected comment: %q", report.Comment)
	}
	if ingestor.calls != 0 {
		t.Errorf("Expected no POST, got %d", ingestor.calls)
	}
}

func TestHandle_IngestionFailureSurfaces(t *testing.T) {
	ingestor := &fakeIngestor{failWith: &domain.IngestionError{StatusCode: 500}}
	h := newTestHandler([]string{"8"}, ingestor)

	report, err := h.Handle(context.Background(), snsEvent(alertMessage))
	if err == nil {
		t.Fatal("Expected ingestion failure to surface")
	}

	var ingErr *domain.IngestionError
	if !errors.As(err, &ingErr) {
		t.Fatalf("Expected IngestionError, got %T: %v", err, err)
	}
	if ingErr.StatusCode != 500 {
		t.Errorf("Expected status 500, got %d", ingErr.StatusCode)
	}
	if report.Success {
		t.Error("Failed delivery must not produce a success report")
	}
}

func TestHandle_MalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		event events.SNSEvent
	}{
		{"empty envelope", events.SNSEvent{}},
		{"message is not JSON", snsEvent("not json at all")},
		{"missing score", snsEvent(`{"objectType":"Alert","accountVendor":"V","accountIds":["A1"]}`)},
		{"missing account ids", snsEvent(`{"objectType":"Alert","score":"8","accountVendor":"V"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ingestor := &fakeIngestor{}
			h := newTestHandler([]string{"8"}, ingestor)

			_, err := h.Handle(context.Background(), tt.event)
			if err == nil {
				t.Fatal("Expected MalformedInputError")
			}

			var malformed *domain.MalformedInputError
			if !errors.As(err, &malformed) {
				t.Errorf("Expected MalformedInputError, got %T: %v", err, err)
			}
			if ingestor.calls != 0 {
				t.Errorf("Expected no POST, got %d", ingestor.calls)
			}
		})
	}
}
