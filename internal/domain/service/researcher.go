// Package service defines interfaces for external capabilities the use cases
// depend on, keeping their implementations in the infrastructure layer.
package service

import "context"

// ResearchRequest carries the job context sent to the research backend.
// Field names follow the backend's wire contract and must not change casually.
type ResearchRequest struct {
	CompanyName    string `json:"companyName"`
	JobTitle       string `json:"jobtitle"`
	JobDescription string `json:"jobDescription"`
	CompanyURL     string `json:"companyUrl"`
}

// CompanyReport is the structured analysis returned by the research backend.
type CompanyReport struct {
	CompanyName       string   `json:"company_name"`
	Industry          string   `json:"industry"`
	BusinessSummary   string   `json:"business_summary"`
	KeyProducts       []string `json:"key_products"`
	CompanyCulture    string   `json:"company_culture"`
	RecentNewsSummary string   `json:"recent_news_summary"`
	JobFitAnalysis    string   `json:"job_fit_analysis"`
	RawAnalysis       string   `json:"raw_analysis"`
}

// CompanyResearcher defines the interface for the external research backend.
// Implementations talk to a network service; all failures (transport, non-2xx,
// undecodable body) surface as errors so callers never persist partial results.
type CompanyResearcher interface {
	// Research asks the backend to analyze the company described by the request.
	Research(ctx context.Context, req *ResearchRequest) (*CompanyReport, error)
}
