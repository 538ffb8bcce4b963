package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"taxifare/internal/modules/ride"
)

// maxBodyBytes bounds how much of an upstream body is read.
const maxBodyBytes = 1 << 20

// Client issues one GET per prediction against the fare service. It does not
// retry or cache.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: timeout}}
}

// Predict sends req as query parameters and decodes the JSON object body.
func (c *Client) Predict(ctx context.Context, req ride.PredictionRequest) (Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("pricing: build request: %w", err)
	}
	httpReq.URL.RawQuery = req.Query().Encode()
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("pricing: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("pricing: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pricing: %w %d: %s", ErrUnexpectedStatus, resp.StatusCode, bytes.TrimSpace(body))
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil || out == nil {
		return nil, fmt.Errorf("pricing: %w (raw: %s)", ErrDecodeResponse, bytes.TrimSpace(body))
	}
	return out, nil
}
