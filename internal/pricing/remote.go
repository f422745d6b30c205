package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// RemoteOptimizer probes an external optimization service. The service is
// optional: callers treat any failure as "use the local math" and never
// retry, so the client keeps a short timeout and no backoff.
type RemoteOptimizer struct {
	baseURL string
	client  *http.Client
}

func NewRemoteOptimizer(baseURL string) *RemoteOptimizer {
	return &RemoteOptimizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

// Ping checks the service is reachable and speaks JSON. The payload shape
// is not specified, so any valid JSON document passes.
func (r *RemoteOptimizer) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("optimizer service returned status %d", resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("optimizer service returned invalid JSON: %w", err)
	}
	return nil
}
