// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
)

// --- Input DTOs ---

// IngestJobInput carries the raw capture payload posted by the browser agent.
// The payload shape is controlled upstream, so everything here is best-effort.
type IngestJobInput struct {
	Payload map[string]any
}

// UpdateJobStatusInput defines the data required to move a job to a new status.
type UpdateJobStatusInput struct {
	JobID  int64
	Status string
}

// --- Output DTOs ---

// IngestJobOutput returns the newly stored job.
type IngestJobOutput struct {
	Job *entity.Job
}

// JobUsecase defines the interface for job-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type JobUsecase interface {
	// IngestJob stores a job from the agent's capture payload. Partial data
	// is tolerated; only storage failures surface as errors.
	IngestJob(ctx context.Context, input IngestJobInput) (*IngestJobOutput, error)

	// ListJobs returns all stored jobs, newest first.
	ListJobs(ctx context.Context) ([]*entity.Job, error)

	// UpdateStatus durably moves a job to the given status.
	UpdateStatus(ctx context.Context, input UpdateJobStatusInput) (*entity.Job, error)

	// DeleteJob removes a job permanently.
	DeleteJob(ctx context.Context, jobID int64) error
}
