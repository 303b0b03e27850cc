package domain

import "fmt"

type ObjectType string

const (
	ObjectTypeAlert   ObjectType = "Alert"
	ObjectTypeWarning ObjectType = "WarningEntity"
)

// Finding is one security event published by Radware CWP. It is decoded from
// the SNS notification message, read once and discarded.
type Finding struct {
	ObjectType      ObjectType `json:"objectType"`
	Score           string     `json:"score"`
	AccountVendor   string     `json:"accountVendor"`
	AccountIDs      []string   `json:"accountIds"`
	ObjectPortalURL string     `json:"objectPortalURL"`

	// Alert fields
	Title       string `json:"title,omitempty"`
	CreatedDate string `json:"createdDate,omitempty"`

	// WarningEntity fields
	Subject           string `json:"subject,omitempty"`
	LastDetectionDate string `json:"lastDetectionDate,omitempty"`
	AccountName       string `json:"accountName,omitempty"`
	Description       string `json:"description,omitempty"`
	Recommendation    string `json:"recommendation,omitempty"`
	ResourceType      string `json:"resourceType,omitempty"`
}

// Validate checks the structural requirements shared by every variant.
// An unknown objectType is a business outcome, not a structural error,
// so it is not rejected here.
func (f *Finding) Validate() error {
	if f.ObjectType == "" {
		return &MalformedInputError{Reason: "missing objectType"}
	}
	if f.Score == "" {
		return &MalformedInputError{Reason: "missing score"}
	}
	if len(f.AccountIDs) == 0 {
		return &MalformedInputError{Reason: "accountIds must contain at least one id"}
	}
	return nil
}

// GroupKey is the first account id, used as both the payload group and the
// source suffix.
func (f *Finding) GroupKey() string {
	return f.AccountIDs[0]
}

// Source is the payload source field, "<vendor>:<first account id>".
func (f *Finding) Source() string {
	return fmt.Sprintf("%s:%s", f.AccountVendor, f.GroupKey())
}
