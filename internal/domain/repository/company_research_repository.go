package repository

import (
	"context"
	"errors"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
)

// ErrResearchNotFound is returned when no research artifact exists for a job.
var ErrResearchNotFound = errors.New("company research not found")

// ErrResearchExists is returned by Create when the storage-level unique
// constraint on job_id rejects a second artifact for the same job. Callers
// treat it as "already researched": re-read and return the stored row.
var ErrResearchExists = errors.New("company research already exists for job")

// CompanyResearchRepository defines persistence for research artifacts.
// Artifacts are insert-only: there is deliberately no update operation,
// and the implementation must enforce uniqueness of job_id at the storage
// level so concurrent writers cannot produce two rows for one job.
type CompanyResearchRepository interface {
	// FindByJobID retrieves the artifact for a job, or ErrResearchNotFound.
	FindByJobID(ctx context.Context, jobID int64) (*entity.CompanyResearch, error)

	// Create persists a new artifact. Returns ErrResearchExists when an
	// artifact for the same job already exists.
	Create(ctx context.Context, research *entity.CompanyResearch) error
}
