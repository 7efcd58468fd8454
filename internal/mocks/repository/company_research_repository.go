package repository

import (
	"context"
	"testing"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	"github.com/kimkuhyun/JH0103/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCompanyResearchRepository is a testify mock for repository.CompanyResearchRepository.
type MockCompanyResearchRepository struct {
	mock.Mock
}

// NewMockCompanyResearchRepository creates a new mock and registers
// expectation checks with the test's cleanup.
func NewMockCompanyResearchRepository(t *testing.T) *MockCompanyResearchRepository {
	m := &MockCompanyResearchRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.CompanyResearchRepository = (*MockCompanyResearchRepository)(nil)

func (m *MockCompanyResearchRepository) FindByJobID(ctx context.Context, jobID int64) (*entity.CompanyResearch, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CompanyResearch), args.Error(1)
}

func (m *MockCompanyResearchRepository) Create(ctx context.Context, research *entity.CompanyResearch) error {
	args := m.Called(ctx, research)

	return args.Error(0)
}
