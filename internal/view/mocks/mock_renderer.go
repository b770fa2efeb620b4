package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Index(userAgent string) (string, error) {
	args := m.Called(userAgent)
	return args.String(0), args.Error(1)
}

func (m *MockRenderer) User(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockRenderer) Home() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockRenderer) HasHome() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockRenderer) Name() string {
	args := m.Called()
	return args.String(0)
}
