package postgres

import (
	"context"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
	"github.com/kimkuhyun/JH0103/internal/domain/repository"
	"github.com/kimkuhyun/JH0103/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// companyResearchRepository implements the domain.CompanyResearchRepository interface using GORM.
type companyResearchRepository struct {
	db *gorm.DB
}

// NewCompanyResearchRepository is the constructor for companyResearchRepository.
func NewCompanyResearchRepository(db *gorm.DB) repository.CompanyResearchRepository {
	return &companyResearchRepository{db: db}
}

// FindByJobID retrieves the research artifact for a job.
func (repo *companyResearchRepository) FindByJobID(ctx context.Context, jobID int64) (*entity.CompanyResearch, error) {
	var researchM model.CompanyResearchModel
	if err := repo.db.WithContext(ctx).Where("job_id = ?", jobID).First(&researchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResearchNotFound
		}

		return nil, errors.Wrap(err, "failed to find research by job id")
	}

	return toResearchDomain(&researchM), nil
}

// Create persists a new research artifact. The unique index on job_id makes
// the insert lose cleanly when another writer got there first, in which case
// ErrResearchExists is returned so the caller can re-read the winner's row.
func (repo *companyResearchRepository) Create(ctx context.Context, research *entity.CompanyResearch) error {
	researchM := fromResearchDomain(research)

	if err := repo.db.WithContext(ctx).Create(researchM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrResearchExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company research")
	}

	research.ID = researchM.ID
	research.CreatedAt = researchM.CreatedAt

	return nil
}

// toResearchDomain converts a GORM CompanyResearchModel to a domain entity.
func toResearchDomain(data *model.CompanyResearchModel) *entity.CompanyResearch {
	if data == nil {
		return nil
	}

	return &entity.CompanyResearch{
		ID:            data.ID,
		JobID:         data.JobID,
		ResultPayload: data.ResultPayload,
		CreatedAt:     data.CreatedAt,
	}
}

// fromResearchDomain converts a domain entity to a GORM CompanyResearchModel.
func fromResearchDomain(data *entity.CompanyResearch) *model.CompanyResearchModel {
	if data == nil {
		return nil
	}

	return &model.CompanyResearchModel{
		ID:            data.ID,
		JobID:         data.JobID,
		ResultPayload: data.ResultPayload,
	}
}
