package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hive-corporation/cwp-forwarder/internal/core/domain"
)

const (
	apiResource = "/api/logs"
	apiVersion  = "2016-04-01"
	contentType = "application/json"
)

// Client delivers signed payloads to the Azure Log Analytics HTTP Data
// Collector API. One POST per payload; no retries. Delivery guarantees are
// the invoking platform's responsibility.
type Client struct {
	customerID string
	sharedKey  string
	endpoint   string
	httpClient *http.Client
}

func NewClient(customerID, sharedKey string) *Client {
	return &Client{
		customerID: customerID,
		sharedKey:  sharedKey,
		endpoint:   fmt.Sprintf("https://%s.ods.opinsights.azure.com%s?api-version=%s", customerID, apiResource, apiVersion),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Ingest signs and POSTs one serialized payload. Any status outside
// [200,299] is returned as a domain.IngestionError.
func (c *Client) Ingest(ctx context.Context, payload []byte, logType string) error {
	timer := StartTimer()
	defer timer.ObserveDuration()

	date := time.Now().UTC().Format(http.TimeFormat)

	authorization, err := BuildSignature(c.customerID, c.sharedKey, date, len(payload), http.MethodPost, contentType, apiResource)
	if err != nil {
		RecordRequest("signature_error")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		RecordRequest("request_error")
		return fmt.Errorf("failed to create ingestion request: %w", err)
	}

	req.Header.Set("content-type", contentType)
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Log-Type", logType)
	req.Header.Set("x-ms-date", date)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		RecordRequest("connection_error")
		return fmt.Errorf("failed to reach ingestion endpoint: %w", err)
	}
	defer resp.Body.Close()

	// The API returns no useful body on success; drain so the connection
	// can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		RecordRequest("accepted")
		log.Printf("✅ Log Analytics accepted payload (%d bytes, Log-Type=%s)", len(payload), logType)
		return nil
	}

	RecordRequest(fmt.Sprintf("http_%dxx", resp.StatusCode/100))
	return &domain.IngestionError{StatusCode: resp.StatusCode}
}
