package service

import (
	"context"
	"testing"

	"github.com/kimkuhyun/JH0103/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockOAuthService is a testify mock for service.OAuthService.
type MockOAuthService struct {
	mock.Mock
}

// NewMockOAuthService creates a new mock and registers expectation checks
// with the test's cleanup.
func NewMockOAuthService(t *testing.T) *MockOAuthService {
	m := &MockOAuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.OAuthService = (*MockOAuthService)(nil)

func (m *MockOAuthService) AuthCodeURL(provider, state string) (string, error) {
	args := m.Called(provider, state)

	return args.String(0), args.Error(1)
}

func (m *MockOAuthService) FetchProfile(ctx context.Context, provider, code string) (*service.OAuthProfile, error) {
	args := m.Called(ctx, provider, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.OAuthProfile), args.Error(1)
}
