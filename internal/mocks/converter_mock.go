package mocks

import (
	"context"

	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
	"github.com/stretchr/testify/mock"
)

// MockConverter is a mock implementation of domain.Converter for testing
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(ctx context.Context, inputPath, outputPath string, params domain.Params) (string, error) {
	args := m.Called(ctx, inputPath, outputPath, params)
	return args.String(0), args.Error(1)
}
