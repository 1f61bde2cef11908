package mocks

import (
	"context"
	"io"

	"github.com/saransh1220/rawconvert/internal/modules/conversion/domain"
	"github.com/stretchr/testify/mock"
)

// MockObjectStore is a mock implementation of domain.ObjectStore for testing
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if b, ok := args.Get(0).([]byte); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

// Store drains body so expectations can match on the uploaded bytes.
func (m *MockObjectStore) Store(ctx context.Context, key string, body io.Reader, contentType string, visibility domain.Visibility) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	args := m.Called(ctx, key, data, contentType, visibility)
	return args.Error(0)
}
