// Package service contains hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"context"
	"testing"

	"github.com/kimkuhyun/JH0103/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockCompanyResearcher is a testify mock for service.CompanyResearcher.
type MockCompanyResearcher struct {
	mock.Mock
}

// NewMockCompanyResearcher creates a new mock and registers expectation
// checks with the test's cleanup.
func NewMockCompanyResearcher(t *testing.T) *MockCompanyResearcher {
	m := &MockCompanyResearcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.CompanyResearcher = (*MockCompanyResearcher)(nil)

func (m *MockCompanyResearcher) Research(ctx context.Context, req *service.ResearchRequest) (*service.CompanyReport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.CompanyReport), args.Error(1)
}
