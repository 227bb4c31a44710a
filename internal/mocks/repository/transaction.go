package repository

import (
	"context"

	"vidtube/internal/domain/repository"
)

// MockRepositoryFactory hands out the repositories a transaction body sees.
type MockRepositoryFactory struct {
	UserRepo     repository.UserRepository
	VideoRepo    repository.VideoRepository
	PlaylistRepo repository.PlaylistRepository
}

func (f *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *MockRepositoryFactory) NewVideoRepository() repository.VideoRepository {
	return f.VideoRepo
}

func (f *MockRepositoryFactory) NewPlaylistRepository() repository.PlaylistRepository {
	return f.PlaylistRepo
}

// MockTransactionManager runs the transaction body directly against the
// factory's repositories; there is no real transaction.
type MockTransactionManager struct {
	Factory *MockRepositoryFactory
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
