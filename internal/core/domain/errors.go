package domain

import "fmt"

// ConfigurationError reports invalid process configuration, including a
// shared key that is not valid base64. Fatal: surfaced to the platform.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration for %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid configuration for %s", e.Field)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// MalformedInputError reports an envelope or finding that fails to parse or
// is missing a required field. Structural, never converted into a
// false-success report.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// IngestionError reports a non-2xx response from the Log Analytics endpoint.
type IngestionError struct {
	StatusCode int
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("log ingestion failed: response code %d", e.StatusCode)
}
