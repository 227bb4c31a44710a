package service

import (
	"context"

	"vidtube/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockMediaStorage is a testify mock for service.MediaStorage.
type MockMediaStorage struct {
	mock.Mock
}

// NewMockMediaStorage creates the mock and registers an expectation check.
func NewMockMediaStorage(t testingT) *MockMediaStorage {
	m := &MockMediaStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMediaStorage) Upload(ctx context.Context, localPath, contentType string) (*service.MediaAsset, error) {
	args := m.Called(ctx, localPath, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.MediaAsset), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
