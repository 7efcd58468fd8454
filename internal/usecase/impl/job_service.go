// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/kimkuhyun/JH0103/config"
	deliverycontext "github.com/kimkuhyun/JH0103/internal/delivery/context"
	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
	"github.com/kimkuhyun/JH0103/internal/domain/repository"
	"github.com/kimkuhyun/JH0103/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackCompanyName = "Unknown Company"
	fallbackRoleName    = "Untitled Role"
)

// corporateMarkers strips Korean corporate-form markers from company names,
// so "(주)카카오" and "카카오 주식회사" both normalize to "카카오".
var corporateMarkers = regexp.MustCompile(`^\s*(\(주\)|（주）|주식회사)\s*|\s*(\(주\)|（주）|주식회사)\s*$`)

// jobService implements the JobUsecase interface.
type jobService struct {
	jobRepo       repository.JobRepository
	userRepo      repository.UserRepository
	statuses      *entity.StatusSet
	defaultUserID int64
	logger        *slog.Logger
}

// JobServiceParams holds dependencies for jobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	JobRepo  repository.JobRepository
	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewJobService is the constructor for jobService. It receives all dependencies as interfaces.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		jobRepo:       params.JobRepo,
		userRepo:      params.UserRepo,
		statuses:      entity.NewStatusSet(params.Config.Jobs.Statuses),
		defaultUserID: params.Config.Auth.DefaultUserID,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IngestJob stores a job from the agent's capture payload.
// The payload is produced by an upstream browser agent and may be partial;
// every field extraction degrades to a fallback instead of failing the save.
func (srv *jobService) IngestJob(ctx context.Context, input usecase.IngestJobInput) (*usecase.IngestJobOutput, error) {
	payload := input.Payload
	jobSummary, _ := payload["job_summary"].(map[string]any)

	job := &entity.Job{
		UserID:        srv.resolveUserID(ctx, payload),
		CompanyName:   extractCompanyName(jobSummary),
		RoleName:      extractRoleTitle(jobSummary),
		Status:        srv.statuses.Initial(),
		OriginalURL:   stringField(payload, "url"),
		JobDetailJSON: serializeJobDetail(srv.log(ctx), jobSummary),
		Screenshot:    stringField(payload, "image_base64"),
	}

	if err := srv.jobRepo.Create(ctx, job); err != nil {
		srv.log(ctx).Error("Failed to store ingested job",
			slog.String("companyName", job.CompanyName),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to store ingested job")
	}

	srv.log(ctx).Info("Job ingested",
		slog.Int64("jobID", job.ID),
		slog.String("companyName", job.CompanyName),
		slog.String("roleName", job.RoleName),
	)

	return &usecase.IngestJobOutput{Job: job}, nil
}

// ListJobs returns all stored jobs, newest first.
func (srv *jobService) ListJobs(ctx context.Context) ([]*entity.Job, error) {
	jobs, err := srv.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return jobs, nil
}

// UpdateStatus durably moves a job to the given status.
// Any recognized status may replace any other; only unknown values are rejected.
func (srv *jobService) UpdateStatus(ctx context.Context, input usecase.UpdateJobStatusInput) (*entity.Job, error) {
	status, ok := srv.statuses.Parse(input.Status)
	if !ok {
		return nil, domainerrors.ErrInvalidJobStatus.WrapMessage("unknown status: " + input.Status)
	}

	if err := srv.jobRepo.UpdateStatus(ctx, input.JobID, status); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound.WrapMessage("cannot update status")
		}

		return nil, errors.Wrap(err, "failed to update job status")
	}

	job, err := srv.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload job after status update")
	}

	srv.log(ctx).Info("Job status updated",
		slog.Int64("jobID", job.ID),
		slog.String("status", string(job.Status)),
	)

	return job, nil
}

// DeleteJob removes a job permanently. Deletion is allowed from any status.
func (srv *jobService) DeleteJob(ctx context.Context, jobID int64) error {
	if err := srv.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domainerrors.ErrJobNotFound.WrapMessage("cannot delete job")
		}

		return errors.Wrap(err, "failed to delete job")
	}

	srv.log(ctx).Info("Job deleted", slog.Int64("jobID", jobID))

	return nil
}

// resolveUserID matches the payload's user_email to a local user, falling back
// to the configured sentinel user when absent or unmatched. Ingestion comes
// from the agent, not a logged-in session, so this is best-effort.
func (srv *jobService) resolveUserID(ctx context.Context, payload map[string]any) int64 {
	email := stringField(payload, "user_email")
	if email == "" {
		return srv.defaultUserID
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("User lookup failed during ingestion",
				slog.String("email", email),
				slog.Any("error", err),
			)
		}

		return srv.defaultUserID
	}

	return user.ID
}

func extractCompanyName(jobSummary map[string]any) string {
	companyInfo, _ := jobSummary["company_info"].(map[string]any)
	name := strings.TrimSpace(stringField(companyInfo, "name"))
	name = strings.TrimSpace(corporateMarkers.ReplaceAllString(name, ""))
	if name == "" {
		return fallbackCompanyName
	}

	return name
}

func extractRoleTitle(jobSummary map[string]any) string {
	// The agent nests the role summary under another job_summary key.
	if nested, ok := jobSummary["job_summary"].(map[string]any); ok {
		if title := strings.TrimSpace(stringField(nested, "title")); title != "" {
			return title
		}
	}
	if title := strings.TrimSpace(stringField(jobSummary, "title")); title != "" {
		return title
	}

	return fallbackRoleName
}

// serializeJobDetail stores the enrichment object verbatim; an unserializable
// payload degrades to "{}" so ingestion never fails on bad detail data.
func serializeJobDetail(logger *slog.Logger, jobSummary map[string]any) string {
	if jobSummary == nil {
		return "{}"
	}

	detail, err := json.Marshal(jobSummary)
	if err != nil {
		logger.Warn("Failed to serialize job detail, storing empty object", slog.Any("error", err))

		return "{}"
	}

	return string(detail)
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if value, ok := m[key].(string); ok {
		return value
	}

	return ""
}
