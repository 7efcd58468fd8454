package impl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
	"github.com/kimkuhyun/JH0103/internal/domain/repository"
	mockRepo "github.com/kimkuhyun/JH0103/internal/mocks/repository"
	"github.com/kimkuhyun/JH0103/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jobServiceFixtures struct {
	service  usecase.JobUsecase
	jobRepo  *mockRepo.MockJobRepository
	userRepo *mockRepo.MockUserRepository
}

func createTestJobService(t *testing.T) jobServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewJobService(JobServiceParams{
		JobRepo:  jobRepo,
		UserRepo: userRepo,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return jobServiceFixtures{
		service:  service,
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func TestJobService_IngestJob_FullPayload(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	payload := map[string]any{
		"url":          "https://careers.example.com/5",
		"image_base64": "aW1n",
		"user_email":   "kim@example.com",
		"job_summary": map[string]any{
			"company_info": map[string]any{"name": "(주)카카오"},
			"job_summary":  map[string]any{"title": "백엔드 엔지니어"},
			"description":  "Go services",
		},
	}

	fixtures.userRepo.On("FindByEmail", ctx, "kim@example.com").
		Return(&entity.User{ID: 7}, nil)

	fixtures.jobRepo.On("Create", ctx, mock.AnythingOfType("*entity.Job")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Job).ID = 11
		}).
		Return(nil)

	output, err := fixtures.service.IngestJob(ctx, usecase.IngestJobInput{Payload: payload})

	require.NoError(t, err)
	job := output.Job
	assert.Equal(t, int64(11), job.ID)
	assert.Equal(t, int64(7), job.UserID)
	assert.Equal(t, "카카오", job.CompanyName)
	assert.Equal(t, "백엔드 엔지니어", job.RoleName)
	assert.Equal(t, entity.JobStatus("PENDING"), job.Status)
	assert.Equal(t, "https://careers.example.com/5", job.OriginalURL)
	assert.Equal(t, "aW1n", job.Screenshot)

	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(job.JobDetailJSON), &detail))
	assert.Equal(t, "Go services", detail["description"])
}

func TestJobService_IngestJob_EmptyPayloadUsesFallbacks(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	fixtures.jobRepo.On("Create", ctx, mock.AnythingOfType("*entity.Job")).Return(nil)

	output, err := fixtures.service.IngestJob(ctx, usecase.IngestJobInput{Payload: map[string]any{}})

	require.NoError(t, err)
	job := output.Job
	assert.Equal(t, "Unknown Company", job.CompanyName)
	assert.Equal(t, "Untitled Role", job.RoleName)
	assert.Equal(t, int64(1), job.UserID)
	assert.Equal(t, "{}", job.JobDetailJSON)
}

func TestJobService_IngestJob_UnmatchedEmailFallsBackToSentinelUser(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)
	fixtures.jobRepo.On("Create", ctx, mock.AnythingOfType("*entity.Job")).Return(nil)

	output, err := fixtures.service.IngestJob(ctx, usecase.IngestJobInput{Payload: map[string]any{
		"user_email": "nobody@example.com",
	}})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Job.UserID)
}

func TestJobService_IngestJob_CompanyNameTrimming(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "ascii marker prefix", raw: "(주)카카오", want: "카카오"},
		{name: "fullwidth marker prefix", raw: "（주）네이버", want: "네이버"},
		{name: "word marker suffix", raw: "카카오 주식회사", want: "카카오"},
		{name: "word marker prefix", raw: "주식회사 토스", want: "토스"},
		{name: "no marker", raw: "당근마켓", want: "당근마켓"},
		{name: "marker only", raw: "주식회사", want: "Unknown Company"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractCompanyName(map[string]any{
				"company_info": map[string]any{"name": tt.raw},
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobService_UpdateStatus_Success(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	fixtures.jobRepo.On("UpdateStatus", ctx, int64(3), entity.JobStatus("APPLIED")).Return(nil)
	fixtures.jobRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Job{ID: 3, Status: "APPLIED"}, nil)

	job, err := fixtures.service.UpdateStatus(ctx, usecase.UpdateJobStatusInput{JobID: 3, Status: "APPLIED"})

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatus("APPLIED"), job.Status)
}

func TestJobService_UpdateStatus_RejectsUnknownValue(t *testing.T) {
	fixtures := createTestJobService(t)

	job, err := fixtures.service.UpdateStatus(context.Background(), usecase.UpdateJobStatusInput{
		JobID:  3,
		Status: "INTERVIEWING",
	})

	require.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidJobStatus))
}

func TestJobService_UpdateStatus_JobNotFound(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	fixtures.jobRepo.On("UpdateStatus", ctx, int64(99), entity.JobStatus("CLOSED")).
		Return(repository.ErrJobNotFound)

	job, err := fixtures.service.UpdateStatus(ctx, usecase.UpdateJobStatusInput{JobID: 99, Status: "CLOSED"})

	require.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_DeleteJob_NotFound(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	fixtures.jobRepo.On("Delete", ctx, int64(42)).Return(repository.ErrJobNotFound)

	err := fixtures.service.DeleteJob(ctx, 42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_ListJobs(t *testing.T) {
	fixtures := createTestJobService(t)
	ctx := context.Background()

	stored := []*entity.Job{{ID: 2}, {ID: 1}}
	fixtures.jobRepo.On("ListAll", ctx).Return(stored, nil)

	jobs, err := fixtures.service.ListJobs(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, jobs)
}
