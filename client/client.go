package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osimkit/osim"
	"github.com/osimkit/osim/api"
	ilog "github.com/osimkit/osim/internal/log"
	"github.com/osimkit/osim/policy"
)

// Client talks to a simulation API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client for the server at baseURL, e.g. "http://localhost:9095".
func New(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Simulate submits a process set and returns the run report.  When p is
// empty the server's default policy applies.
func (c *Client) Simulate(ctx context.Context, p policy.Policy, request *api.SimulateRequest) (*osim.Report, error) {
	url := c.baseURL + "/api/v1/simulate"
	if p != "" {
		url += "/" + string(p)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("simulation request failed", ilog.ErrAttr(err), "url", url)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	report := &osim.Report{}
	if err := json.NewDecoder(resp.Body).Decode(report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	c.logger.Debug("simulation completed",
		"runId", report.RunID,
		"policy", report.Policy,
		"totalTime", report.TotalTime)
	return report, nil
}

// Catalog returns the policies and strategies the server supports.
func (c *Client) Catalog(ctx context.Context) (*api.CatalogResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/catalog", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}
	catalog := &api.CatalogResponse{}
	if err := json.NewDecoder(resp.Body).Decode(catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return catalog, nil
}

// errorFromResponse extracts the server's error message when present.
func (c *Client) errorFromResponse(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("server responded with status %d: %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("server responded with status %d", resp.StatusCode)
}
