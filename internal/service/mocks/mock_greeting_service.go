package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Index(ctx context.Context, userAgent string) (string, error) {
	args := m.Called(ctx, userAgent)
	return args.String(0), args.Error(1)
}

func (m *MockGreetingService) User(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockGreetingService) Home(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGreetingService) HomeEnabled() bool {
	args := m.Called()
	return args.Bool(0)
}
