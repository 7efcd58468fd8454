package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "github.com/kimkuhyun/JH0103/internal/delivery/context"
	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
	"github.com/kimkuhyun/JH0103/internal/domain/repository"
	"github.com/kimkuhyun/JH0103/internal/domain/service"
	"github.com/kimkuhyun/JH0103/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// descriptionExcerptRunes caps the fallback excerpt taken from the raw detail
// JSON when it carries no description field.
const descriptionExcerptRunes = 1000

// companyService implements the CompanyUsecase interface.
type companyService struct {
	jobRepo      repository.JobRepository
	researchRepo repository.CompanyResearchRepository
	researcher   service.CompanyResearcher
	logger       *slog.Logger
}

// CompanyServiceParams holds dependencies for companyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	JobRepo      repository.JobRepository
	ResearchRepo repository.CompanyResearchRepository
	Researcher   service.CompanyResearcher
	Logger       *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		jobRepo:      params.JobRepo,
		researchRepo: params.ResearchRepo,
		researcher:   params.Researcher,
		logger:       params.Logger,
	}
}

func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureResearch returns the research artifact for a job, calling the external
// backend at most once per job. A stored artifact short-circuits before any
// network traffic; when two callers race past that check, the unique job_id
// constraint picks one winner and the loser returns the winner's row.
func (srv *companyService) EnsureResearch(ctx context.Context, jobID int64) (*entity.CompanyResearch, error) {
	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound.WrapMessage("cannot research unknown job")
		}

		return nil, errors.Wrap(err, "failed to load job for research")
	}

	existing, err := srv.researchRepo.FindByJobID(ctx, jobID)
	if err == nil {
		srv.log(ctx).Debug("Research already stored, skipping external call", slog.Int64("jobID", jobID))

		return existing, nil
	}
	if !errors.Is(err, repository.ErrResearchNotFound) {
		return nil, errors.Wrap(err, "failed to check existing research")
	}

	request := &service.ResearchRequest{
		CompanyName:    job.CompanyName,
		JobTitle:       job.RoleName,
		JobDescription: srv.extractJobDescription(ctx, job.JobDetailJSON),
		CompanyURL:     job.OriginalURL,
	}

	report, err := srv.researcher.Research(ctx, request)
	if err != nil {
		srv.log(ctx).Error("External research failed",
			slog.Int64("jobID", jobID),
			slog.String("companyName", job.CompanyName),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrResearchFailed.WrapMessage(err.Error())
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, domainerrors.ErrResearchSaveFailed.WrapMessage("failed to serialize research report")
	}

	research := &entity.CompanyResearch{
		JobID:         jobID,
		ResultPayload: string(payload),
	}

	if err := srv.researchRepo.Create(ctx, research); err != nil {
		if errors.Is(err, repository.ErrResearchExists) {
			// Another caller won the insert race; their artifact is the result.
			srv.log(ctx).Info("Concurrent research insert lost, returning stored artifact", slog.Int64("jobID", jobID))

			return srv.researchRepo.FindByJobID(ctx, jobID)
		}

		return nil, domainerrors.ErrResearchSaveFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Company research stored",
		slog.Int64("jobID", jobID),
		slog.String("companyName", job.CompanyName),
	)

	return research, nil
}

// GetResearch returns the stored artifact, or (nil, nil) when none exists.
func (srv *companyService) GetResearch(ctx context.Context, jobID int64) (*entity.CompanyResearch, error) {
	research, err := srv.researchRepo.FindByJobID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrResearchNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load research")
	}

	return research, nil
}

// extractJobDescription pulls the description field out of the stored detail
// JSON. A detail object without a description degrades to a bounded excerpt of
// the raw JSON; undecodable detail is logged and yields an empty description,
// never an error.
func (srv *companyService) extractJobDescription(ctx context.Context, detailJSON string) string {
	if detailJSON == "" {
		return ""
	}

	var detail map[string]any
	if err := json.Unmarshal([]byte(detailJSON), &detail); err != nil {
		srv.log(ctx).Warn("Job detail is not valid JSON, researching without description", slog.Any("error", err))

		return ""
	}

	if description, ok := detail["description"].(string); ok && description != "" {
		return description
	}

	excerpt := []rune(detailJSON)
	if len(excerpt) > descriptionExcerptRunes {
		excerpt = excerpt[:descriptionExcerptRunes]
	}

	return string(excerpt)
}
