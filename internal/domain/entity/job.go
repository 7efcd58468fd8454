// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// JobStatus is the lifecycle state of a tracked job application.
// The set of valid values is configurable per deployment (see StatusSet);
// the constants below are the default set.
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusDraft   JobStatus = "DRAFT"
	JobStatusApplied JobStatus = "APPLIED"
	JobStatusClosed  JobStatus = "CLOSED"
)

// DefaultStatuses is the default lifecycle enum. The first entry is the
// status assigned at ingestion.
var DefaultStatuses = []JobStatus{JobStatusPending, JobStatusDraft, JobStatusApplied, JobStatusClosed}

// StatusSet is the deployment-configured set of valid job statuses.
// Any status in the set may transition to any other; the only rejected
// mutation is an unrecognized value.
type StatusSet struct {
	ordered []JobStatus
	valid   map[JobStatus]struct{}
}

// NewStatusSet builds a StatusSet from the configured status names.
// An empty input falls back to DefaultStatuses.
func NewStatusSet(names []string) *StatusSet {
	statuses := make([]JobStatus, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		statuses = append(statuses, JobStatus(trimmed))
	}
	if len(statuses) == 0 {
		statuses = append(statuses, DefaultStatuses...)
	}

	valid := make(map[JobStatus]struct{}, len(statuses))
	for _, status := range statuses {
		valid[status] = struct{}{}
	}

	return &StatusSet{ordered: statuses, valid: valid}
}

// Initial returns the status assigned to a freshly ingested job.
func (s *StatusSet) Initial() JobStatus {
	return s.ordered[0]
}

// Parse converts a raw string into a JobStatus, reporting whether the
// value belongs to the configured set.
func (s *StatusSet) Parse(raw string) (JobStatus, bool) {
	status := JobStatus(raw)
	_, ok := s.valid[status]

	return status, ok
}

// Values returns the configured statuses in declaration order.
func (s *StatusSet) Values() []JobStatus {
	return s.ordered
}

// Job is a tracked job application. It is created once at ingestion and
// afterwards mutated only through status updates or deletion.
type Job struct {
	ID            int64     // Auto-generated identifier.
	UserID        int64     // Owning user; the configured sentinel user when ingestion carries no matchable email.
	CompanyName   string    // Never empty; "Unknown Company" when extraction fails.
	RoleName      string    // Never empty; "Untitled Role" when extraction fails.
	Status        JobStatus // Always a member of the deployment's StatusSet.
	OriginalURL   string    // URL of the original posting, as reported by the agent.
	JobDetailJSON string    // The full enrichment payload, stored verbatim as JSON text.
	Screenshot    string    // Optional base64-encoded screenshot of the posting.
	CreatedAt     time.Time
}
