package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
	"github.com/kimkuhyun/JH0103/internal/domain/repository"
	"github.com/kimkuhyun/JH0103/internal/domain/service"
	mockRepo "github.com/kimkuhyun/JH0103/internal/mocks/repository"
	mockSvc "github.com/kimkuhyun/JH0103/internal/mocks/service"
	"github.com/kimkuhyun/JH0103/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type companyServiceFixtures struct {
	service      usecase.CompanyUsecase
	jobRepo      *mockRepo.MockJobRepository
	researchRepo *mockRepo.MockCompanyResearchRepository
	researcher   *mockSvc.MockCompanyResearcher
}

func createTestCompanyService(t *testing.T) companyServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)
	researchRepo := mockRepo.NewMockCompanyResearchRepository(t)
	researcher := mockSvc.NewMockCompanyResearcher(t)

	svc := NewCompanyService(CompanyServiceParams{
		JobRepo:      jobRepo,
		ResearchRepo: researchRepo,
		Researcher:   researcher,
		Logger:       newDiscardLogger(),
	})

	return companyServiceFixtures{
		service:      svc,
		jobRepo:      jobRepo,
		researchRepo: researchRepo,
		researcher:   researcher,
	}
}

func testJob() *entity.Job {
	return &entity.Job{
		ID:            5,
		CompanyName:   "카카오",
		RoleName:      "백엔드 엔지니어",
		OriginalURL:   "https://careers.example.com/5",
		JobDetailJSON: `{"description":"Go services","stack":["go","postgres"]}`,
	}
}

func TestCompanyService_EnsureResearch_CallsBackendOnce(t *testing.T) {
	fixtures := createTestCompanyService(t)
	ctx := context.Background()

	fixtures.jobRepo.On("FindByID", ctx, int64(5)).Return(testJob(), nil)
	fixtures.researchRepo.On("FindByJobID", ctx, int64(5)).
		Return(nil, repository.ErrResearchNotFound)

	fixtures.researcher.On("Research", ctx, &service.ResearchRequest{
		CompanyName:    "카카오",
		JobTitle:       "백엔드 엔지니어",
		JobDescription: "Go services",
		CompanyURL:     "https://careers.example.com/5",
	}).Return(&service.CompanyReport{CompanyName: "카카오", Industry: "tech"}, nil)

	fixtures.researchRepo.On("Create", ctx, mock.AnythingOfType("*entity.CompanyResearch")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.CompanyResearch).ID = 77
		}).
		Return(nil)

	research, err := fixtures.service.EnsureResearch(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(77), research.ID)
	assert.Equal(t, int64(5), research.JobID)

	var report service.CompanyReport
	require.NoError(t, json.Unmarshal([]byte(research.ResultPayload), &report))
	assert.Equal(t, "카카오", report.CompanyName)
	assert.Equal(t, "tech", report.Industry)
}

func TestCompanyService_EnsureResearch_ExistingArtifactSkipsBackend(t *testing.T) {
	fixtures := createTestCompanyService(t)
	ctx := context.Background()

	stored := &entity.CompanyResearch{ID: 9, JobID: 5, ResultPayload: `{"company_name":"카카오"}`}

	fixtures.jobRepo.On("FindByID", ctx, int64(5)).Return(testJob(), nil)
	fixtures.researchRepo.On("FindByJobID", ctx, int64(5)).Return(stored, nil)

	research, err := fixtures.service.EnsureResearch(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, stored, research)
	fixtures.researcher.AssertNotCalled(t, "Research", mock.Anything, mock.Anything)
}

func TestCompanyService_EnsureResearch_JobNotFound(t *testing.T) {
	fixtures := createTestCompanyService(t)
	ctx := context.Background()

	fixtures.jobRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrJobNotFound)

	research, err := fixtures.service.EnsureResearch(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, research)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestCompanyService_EnsureResearch_BackendFailureStoresNothing(t *testing.T) {
	fixtures := createTestCompanyService(t)
	ctx := context.Background()

	fixtures.jobRepo.On("FindByID", ctx, int64(5)).Return(testJob(), nil)
	fixtures.researchRepo.On("FindByJobID", ctx, int64(5)).
		Return(nil, repository.ErrResearchNotFound)
	fixtures.researcher.On("Research", ctx, mock.AnythingOfType("*service.ResearchRequest")).
		Return(nil, errors.New("backend unreachable"))

	research, err := fixtures.service.EnsureResearch(ctx, 5)

	require.Error(t, err)
	assert.Nil(t, research)
	assert.True(t, errors.Is(err, domainerrors.ErrResearchFailed))
	fixtures.researchRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyService_EnsureResearch_LostInsertRaceReturnsWinner(t *testing.T) {
	fixtures := createTestCompanyService(t)
	ctx := context.Background()

	winner := &entity.CompanyResearch{ID: 1, JobID: 5, ResultPayload: `{"company_name":"카카오"}`}

	fixtures.jobRepo.On("FindByID", ctx, int64(5)).Return(testJob(), nil)
	fixtures.researchRepo.On("FindByJobID", ctx, int64(5)).
		Return(nil, repository.ErrResearchNotFound).Once()
	fixtures.researcher.On("Research", ctx, mock.AnythingOfType("*service.ResearchRequest")).
		Return(&service.CompanyReport{CompanyName: "카카오"}, nil)
	fixtures.researchRepo.On("Create", ctx, mock.AnythingOfType("*entity.CompanyResearch")).
		Return(repository.ErrResearchExists)
	fixtures.researchRepo.On("FindByJobID", ctx, int64(5)).Return(winner, nil).Once()

	research, err := fixtures.service.EnsureResearch(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, winner, research)
}

func TestCompanyService_GetResearch_AbsenceIsNotAnError(t *testing.T) {
	fixtures := createTestCompanyService(t)
	ctx := context.Background()

	fixtures.researchRepo.On("FindByJobID", ctx, int64(5)).
		Return(nil, repository.ErrResearchNotFound)

	research, err := fixtures.service.GetResearch(ctx, 5)

	require.NoError(t, err)
	assert.Nil(t, research)
}

func TestCompanyService_ExtractJobDescription(t *testing.T) {
	svc := &companyService{logger: newDiscardLogger()}
	ctx := context.Background()

	t.Run("description field wins", func(t *testing.T) {
		got := svc.extractJobDescription(ctx, `{"description":"build things","other":"x"}`)
		assert.Equal(t, "build things", got)
	})

	t.Run("missing description falls back to bounded excerpt", func(t *testing.T) {
		long := `{"detail":"` + strings.Repeat("가", 2000) + `"}`
		got := svc.extractJobDescription(ctx, long)
		assert.Equal(t, 1000, len([]rune(got)))
		assert.Equal(t, string([]rune(long)[:1000]), got)
	})

	t.Run("short detail excerpted whole", func(t *testing.T) {
		got := svc.extractJobDescription(ctx, `{"stack":["go"]}`)
		assert.Equal(t, `{"stack":["go"]}`, got)
	})

	t.Run("malformed detail yields empty description", func(t *testing.T) {
		got := svc.extractJobDescription(ctx, "not json at all")
		assert.Empty(t, got)
	})

	t.Run("empty detail yields empty description", func(t *testing.T) {
		assert.Empty(t, svc.extractJobDescription(ctx, ""))
	})
}
