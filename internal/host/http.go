package host

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rafiki270/XCUIDebug/internal/model"
)

// Client talks to an automation host over HTTP. The host exposes the current
// hierarchy dump at /hierarchy and per-identifier runtime state at /state.
// Client implements both Source and StateProber.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL. The timeout bounds each
// individual request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchDump(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/hierarchy", nil)
	if err != nil {
		return "", fmt.Errorf("fetch hierarchy: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch hierarchy: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch hierarchy: host returned %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch hierarchy: %w", err)
	}
	return string(b), nil
}

// ElementState queries /state for one identifier. Callers treat a returned
// error as "use the default state"; a flaky host must not abort a report.
func (c *Client) ElementState(ctx context.Context, identifier string) (model.State, error) {
	u := c.baseURL + "/state?identifier=" + url.QueryEscape(identifier)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.DefaultState, fmt.Errorf("probe %q: %w", identifier, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return model.DefaultState, fmt.Errorf("probe %q: %w", identifier, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.DefaultState, fmt.Errorf("probe %q: host returned %s", identifier, resp.Status)
	}
	var st model.State
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return model.DefaultState, fmt.Errorf("probe %q: %w", identifier, err)
	}
	return st, nil
}
