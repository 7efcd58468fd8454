package research

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kimkuhyun/JH0103/config"
	"github.com/kimkuhyun/JH0103/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResearcher(t *testing.T, handler http.HandlerFunc) service.CompanyResearcher {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Research.BaseURL = server.URL
	cfg.Research.Timeout = 5 * time.Second

	return NewHTTPResearcher(cfg, slog.Default())
}

func TestHTTPResearcher_Research(t *testing.T) {
	researcher := newTestResearcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req service.ResearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "토스", req.CompanyName)
		assert.Equal(t, "Backend Engineer", req.JobTitle)

		// Literal backend payload, not a round-trip of our own types, so
		// wire-contract drift fails here instead of in production.
		w.Write([]byte(`{
			"success": true,
			"data": {
				"company_name": "토스",
				"industry": "fintech",
				"business_summary": "payments and banking",
				"key_products": ["토스페이", "토스뱅크"],
				"company_culture": "autonomy and ownership",
				"recent_news_summary": "expanded into securities",
				"job_fit_analysis": "strong backend match",
				"raw_analysis": "full analysis text"
			}
		}`))
	})

	report, err := researcher.Research(context.Background(), &service.ResearchRequest{
		CompanyName: "토스",
		JobTitle:    "Backend Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, "토스", report.CompanyName)
	assert.Equal(t, "fintech", report.Industry)
	assert.Equal(t, "payments and banking", report.BusinessSummary)
	assert.Equal(t, []string{"토스페이", "토스뱅크"}, report.KeyProducts)
	assert.Equal(t, "autonomy and ownership", report.CompanyCulture)
	assert.Equal(t, "expanded into securities", report.RecentNewsSummary)
	assert.Equal(t, "strong backend match", report.JobFitAnalysis)
	assert.Equal(t, "full analysis text", report.RawAnalysis)
}

func TestHTTPResearcher_NonSuccessStatus(t *testing.T) {
	researcher := newTestResearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	report, err := researcher.Research(context.Background(), &service.ResearchRequest{CompanyName: "x"})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "non-success status")
}

func TestHTTPResearcher_BackendReportsFailure(t *testing.T) {
	researcher := newTestResearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "search quota exceeded",
		})
	})

	report, err := researcher.Research(context.Background(), &service.ResearchRequest{CompanyName: "x"})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "search quota exceeded")
}

func TestHTTPResearcher_MalformedResponse(t *testing.T) {
	researcher := newTestResearcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	})

	report, err := researcher.Research(context.Background(), &service.ResearchRequest{CompanyName: "x"})

	require.Error(t, err)
	assert.Nil(t, report)
}
