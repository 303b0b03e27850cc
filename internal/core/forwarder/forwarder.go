package forwarder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hive-corporation/cwp-forwarder/internal/core/domain"
	"github.com/hive-corporation/cwp-forwarder/internal/core/ports"
)

// DefaultLogType is the Log-Type tag classifying the ingested stream.
const DefaultLogType = "RadwareCNP"

const discardedComment = "Discarded. Risk score did not meet threshold requirements."

// Forwarder normalizes a finding into a log payload and sends it through the
// configured ingestor. It holds no mutable state, so one instance is safe to
// share across concurrent invocations.
type Forwarder struct {
	filter   domain.ScoreFilter
	ingestor ports.LogIngestor
	logType  string
}

func New(filter domain.ScoreFilter, ingestor ports.LogIngestor, logType string) *Forwarder {
	if logType == "" {
		logType = DefaultLogType
	}
	return &Forwarder{
		filter:   filter,
		ingestor: ingestor,
		logType:  logType,
	}
}

// Process applies the score filter, maps the finding variant to a log
// payload and delivers it. Filtered and unsupported findings are reported
// with success=false and no network call; ingestion failures propagate.
func (f *Forwarder) Process(ctx context.Context, finding *domain.Finding) (domain.OutcomeReport, error) {
	if !f.filter.Allows(finding.Score) {
		return domain.OutcomeReport{
			Success:   false,
			EventType: string(finding.ObjectType),
			RiskScore: finding.Score,
			Comment:   discardedComment,
		}, nil
	}

	var summary, timestamp string
	var customDetails map[string]string

	switch finding.ObjectType {
	case domain.ObjectTypeAlert:
		summary = finding.Title
		timestamp = finding.CreatedDate
		customDetails = map[string]string{
			"Event Type": "Alert",
			"Risk Score": finding.Score,
		}
	case domain.ObjectTypeWarning:
		summary = finding.Subject
		timestamp = finding.LastDetectionDate
		customDetails = map[string]string{
			"Event Type":          "Warning",
			"Account Name":        finding.AccountName,
			"Risk Score":          finding.Score,
			"Warning Description": finding.Description,
			"Recommendation":      finding.Recommendation,
			"Resource Type":       finding.ResourceType,
		}
	default:
		return domain.OutcomeReport{
			Success: false,
			Comment: fmt.Sprintf("Alert (objectType) not supported: %s", finding.ObjectType),
		}, nil
	}

	payload := domain.LogPayload{
		Summary:       summary,
		Source:        finding.Source(),
		Timestamp:     timestamp,
		Group:         finding.GroupKey(),
		CustomDetails: customDetails,
		Links: []domain.Link{
			{Href: finding.ObjectPortalURL, Text: "Link to event in Radware CNP Portal"},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.OutcomeReport{}, fmt.Errorf("failed to marshal log payload: %w", err)
	}

	if err := f.ingestor.Ingest(ctx, body, f.logType); err != nil {
		return domain.OutcomeReport{}, err
	}

	return domain.OutcomeReport{
		Success:   true,
		EventType: string(finding.ObjectType),
		RiskScore: finding.Score,
		Comment:   "",
	}, nil
}
