package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner stands in for the conversion service behind the entry points
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
