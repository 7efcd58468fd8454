package entity

import "time"

// CompanyResearch is the persisted result of one external company-research
// call for a job. At most one row ever exists per job (unique job_id), and a
// row is immutable once written: later research requests for the same job
// return the stored artifact without calling the external service again.
type CompanyResearch struct {
	ID            int64
	JobID         int64  // Unique; enforces the one-to-one with Job at the storage level.
	ResultPayload string // The research response's data object, serialized verbatim.
	CreatedAt     time.Time
}
