package domain

// Link points back to the event in the Radware CNP portal. It is attached to
// the payload as metadata only: the upstream contract never included links in
// the serialized body, so the field is excluded from the wire format.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// LogPayload is the canonical shape sent to the Log Analytics ingestion
// endpoint. Built fresh per finding, never persisted.
type LogPayload struct {
	Summary       string            `json:"summary"`
	Source        string            `json:"source"`
	Timestamp     string            `json:"timestamp"`
	Group         string            `json:"group"`
	CustomDetails map[string]string `json:"custom_details"`

	Links []Link `json:"-"`
}

// OutcomeReport is the structured result of one invocation. Discards and
// unsupported variants produce success=false reports; they are not errors.
type OutcomeReport struct {
	Success   bool   `json:"success"`
	EventType string `json:"eventType,omitempty"`
	RiskScore string `json:"riskScore,omitempty"`
	Comment   string `json:"comment"`
}

// ScoreFilter is the allowlist of risk scores that should be forwarded.
// Built once from configuration and read-only afterwards.
type ScoreFilter map[string]struct{}

func NewScoreFilter(scores []string) ScoreFilter {
	filter := make(ScoreFilter, len(scores))
	for _, s := range scores {
		filter[s] = struct{}{}
	}
	return filter
}

func (f ScoreFilter) Allows(score string) bool {
	_, ok := f[score]
	return ok
}
