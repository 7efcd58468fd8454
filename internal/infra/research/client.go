// Package research implements the HTTP client for the external company
// research backend.
package research

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kimkuhyun/JH0103/config"
	"github.com/kimkuhyun/JH0103/internal/domain/service"

	"github.com/pkg/errors"
)

const maxResponseBodySize = 4 << 20 // 4 MiB

// researchEnvelope is the backend's response wrapper.
type researchEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// httpResearcher implements CompanyResearcher by POSTing the job context to
// the research backend's /search endpoint.
type httpResearcher struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPResearcher creates a research client from the configured backend URL.
func NewHTTPResearcher(cfg *config.Config, logger *slog.Logger) service.CompanyResearcher {
	timeout := cfg.Research.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &httpResearcher{
		baseURL: strings.TrimRight(cfg.Research.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Research sends the job context to the backend and decodes the structured report.
func (c *httpResearcher) Research(ctx context.Context, researchReq *service.ResearchRequest) (*service.CompanyReport, error) {
	body, err := json.Marshal(researchReq)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := c.baseURL + "/search"

	c.logger.InfoContext(ctx, "Requesting company research",
		slog.String("endpoint", endpoint),
		slog.String("companyName", researchReq.CompanyName),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "research backend request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("research backend returned non-success status: %d", resp.StatusCode)
	}

	var envelope researchEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode research response")
	}
	if !envelope.Success {
		return nil, errors.Errorf("research backend reported failure: %s", envelope.Error)
	}

	var report service.CompanyReport
	if err := json.Unmarshal(envelope.Data, &report); err != nil {
		return nil, errors.Wrap(err, "failed to decode research report data")
	}

	c.logger.InfoContext(ctx, "Company research completed",
		slog.String("companyName", report.CompanyName),
	)

	return &report, nil
}
