// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
)

// ErrJobNotFound is a domain-specific error returned when a job is not found.
var ErrJobNotFound = errors.New("job not found")

// JobRepository defines the standard operations for job persistence.
type JobRepository interface {
	// FindByID retrieves a single job by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Job, error)

	// ListAll returns every stored job, newest first.
	ListAll(ctx context.Context) ([]*entity.Job, error)

	// Create persists a new job entity and fills in its generated ID and timestamps.
	Create(ctx context.Context, job *entity.Job) error

	// UpdateStatus durably replaces the status of an existing job.
	UpdateStatus(ctx context.Context, id int64, status entity.JobStatus) error

	// Delete removes a job. Deletion is terminal and permitted from any state.
	Delete(ctx context.Context, id int64) error
}
