package eligibility

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client queries the backend collaborator for the set of talismans a
// session has unlocked. The engine never computes eligibility itself; it
// only filters shop offers against the supplied set.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new unlock-eligibility client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type unlocksResponse struct {
	Talismans []string `json:"talismans"`
}

// EligibleTalismans fetches the unlocked talisman set for a session.
func (c *Client) EligibleTalismans(ctx context.Context, sessionID string) (map[string]bool, error) {
	endpoint := fmt.Sprintf("%s/api/v1/unlocks?session_id=%s", c.baseURL, url.QueryEscape(sessionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unlocks request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unlocks request returned status %d", resp.StatusCode)
	}

	var payload unlocksResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode unlocks response: %w", err)
	}

	eligible := make(map[string]bool, len(payload.Talismans))
	for _, id := range payload.Talismans {
		eligible[id] = true
	}
	return eligible, nil
}
