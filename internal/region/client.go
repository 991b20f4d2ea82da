// Package region re-prices an estimate for local market conditions, using an
// external advisory service when it is reachable and a static multiplier
// table when it is not.
package region

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Advisor obtains a market adjustment for a location and project type.
// Implemented by AdvisorClient; tests substitute their own.
type Advisor interface {
	MarketAdjustment(ctx context.Context, location, projectType string) (*Adjustment, error)
}

// Adjustment is the advisory service response shape. Anything that does not
// parse into this shape is treated as if the service were unavailable.
type Adjustment struct {
	Multiplier   float64  `json:"multiplier"`
	Reasoning    string   `json:"reasoning"`
	MarketTrends []string `json:"marketTrends"`
}

type adjustmentRequest struct {
	Location    string `json:"location"`
	ProjectType string `json:"projectType"`
}

// AdvisorClient calls the advisory service over HTTP with a bounded timeout.
// It never retries; retry policy belongs to the caller.
type AdvisorClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAdvisorClient(baseURL, apiKey string, timeout time.Duration) *AdvisorClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AdvisorClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *AdvisorClient) MarketAdjustment(ctx context.Context, location, projectType string) (*Adjustment, error) {
	payload, err := json.Marshal(adjustmentRequest{Location: location, ProjectType: projectType})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/market-adjustment", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("advisor returned status %d", resp.StatusCode)
	}

	var adjustment Adjustment
	if err := json.NewDecoder(resp.Body).Decode(&adjustment); err != nil {
		return nil, fmt.Errorf("decode advisor response: %w", err)
	}
	if adjustment.Multiplier <= 0 {
		return nil, fmt.Errorf("advisor returned non-positive multiplier %f", adjustment.Multiplier)
	}
	return &adjustment, nil
}
