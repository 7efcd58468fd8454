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

// jobRepository implements the domain.JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// FindByID retrieves a single job by its unique ID.
func (repo *jobRepository) FindByID(ctx context.Context, id int64) (*entity.Job, error) {
	var jobM model.JobModel
	if err := repo.db.WithContext(ctx).First(&jobM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	return toJobDomain(&jobM), nil
}

// ListAll returns every stored job, newest first.
func (repo *jobRepository) ListAll(ctx context.Context) ([]*entity.Job, error) {
	var jobMs []model.JobModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&jobMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	jobs := make([]*entity.Job, 0, len(jobMs))
	for i := range jobMs {
		jobs = append(jobs, toJobDomain(&jobMs[i]))
	}

	return jobs, nil
}

// Create persists a new job entity and fills in its generated ID and timestamps.
func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrJobCreationFailed.WrapMessage("missing required job information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrJobCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt

	return nil
}

// UpdateStatus durably replaces the status of an existing job.
func (repo *jobRepository) UpdateStatus(ctx context.Context, id int64, status entity.JobStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// Delete removes a job by ID.
func (repo *jobRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.JobModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// toJobDomain converts a GORM JobModel to a domain Job entity.
func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:            data.ID,
		UserID:        data.UserID,
		CompanyName:   data.CompanyName,
		RoleName:      data.RoleName,
		Status:        entity.JobStatus(data.Status),
		OriginalURL:   data.OriginalURL,
		JobDetailJSON: data.JobDetailJSON,
		Screenshot:    data.Screenshot,
		CreatedAt:     data.CreatedAt,
	}
}

// fromJobDomain converts a domain Job entity to a GORM JobModel for persistence.
func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:            data.ID,
		UserID:        data.UserID,
		CompanyName:   data.CompanyName,
		RoleName:      data.RoleName,
		Status:        string(data.Status),
		OriginalURL:   data.OriginalURL,
		JobDetailJSON: data.JobDetailJSON,
		Screenshot:    data.Screenshot,
	}
}
