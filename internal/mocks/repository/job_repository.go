// Package repository contains hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
	"github.com/kimkuhyun/JH0103/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a testify mock for repository.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

// NewMockJobRepository creates a new mock and registers expectation checks
// with the test's cleanup.
func NewMockJobRepository(t *testing.T) *MockJobRepository {
	m := &MockJobRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) FindByID(ctx context.Context, id int64) (*entity.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Job), args.Error(1)
}

func (m *MockJobRepository) ListAll(ctx context.Context) ([]*entity.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Job), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, job *entity.Job) error {
	args := m.Called(ctx, job)

	return args.Error(0)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, id int64, status entity.JobStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
