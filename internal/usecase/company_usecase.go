package usecase

import (
	"context"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
)

// CompanyUsecase defines the interface for company research operations.
type CompanyUsecase interface {
	// EnsureResearch returns the stored research artifact for a job,
	// running the external research exactly once per job. Concurrent calls
	// for the same job all converge on a single stored artifact.
	EnsureResearch(ctx context.Context, jobID int64) (*entity.CompanyResearch, error)

	// GetResearch returns the stored artifact for a job, or (nil, nil) when
	// none exists yet. Absence is a normal state, not an error.
	GetResearch(ctx context.Context, jobID int64) (*entity.CompanyResearch, error)
}
