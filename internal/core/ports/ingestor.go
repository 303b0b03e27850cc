package ports

import "context"

// LogIngestor delivers one serialized payload to the log-analytics backend.
type LogIngestor interface {
	Ingest(ctx context.Context, payload []byte, logType string) error
}
