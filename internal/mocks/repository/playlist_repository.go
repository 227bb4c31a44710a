package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPlaylistRepository is a testify mock for repository.PlaylistRepository.
type MockPlaylistRepository struct {
	mock.Mock
}

// NewMockPlaylistRepository creates the mock and registers an expectation check.
func NewMockPlaylistRepository(t testingT) *MockPlaylistRepository {
	m := &MockPlaylistRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	return m.Called(ctx, playlistID, videoID).Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	return m.Called(ctx, playlistID, videoID).Error(0)
}
