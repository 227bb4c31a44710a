package impl

import (
	"context"
	"errors"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockSvc "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	mediaStorage     *mockSvc.MockMediaStorage
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	m := &userServiceMocks{
		userRepo:         mockRepo.NewMockUserRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		mediaStorage:     mockSvc.NewMockMediaStorage(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:        &mockRepo.MockTransactionManager{Factory: &mockRepo.MockRepositoryFactory{UserRepo: m.userRepo}},
		UserRepo:         m.userRepo,
		SubscriptionRepo: m.subscriptionRepo,
		Hasher:           m.hasher,
		TokenService:     m.tokenService,
		MediaStorage:     m.mediaStorage,
		Logger:           newDiscardLogger(),
	})

	return svc, m
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.On("FindByUsernameOrEmail", ctx, "janedoe").
		Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("FindByUsernameOrEmail", ctx, "jane@example.com").
		Return(nil, repository.ErrUserNotFound)
	m.hasher.On("Hash", "secret123").Return("$2a$hashed", nil)
	m.mediaStorage.On("Upload", ctx, "/tmp/avatar.png", "image/png").
		Return(&service.MediaAsset{URL: "https://cdn/avatar.png", Key: "avatar-key"}, nil)
	m.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			// The stored hash is never the plaintext password.
			assert.NotEqual(t, "secret123", user.PasswordHash)
			assert.Equal(t, "$2a$hashed", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := svc.Register(ctx, usecase.RegisterInput{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Username: "JaneDoe",
		Password: "secret123",
		Avatar:   usecase.FileUpload{Path: "/tmp/avatar.png", ContentType: "image/png"},
	})
	require.NoError(t, err)

	// The returned account is sanitized and the username lowercased.
	assert.Equal(t, "janedoe", user.Username)
	assert.Empty(t, user.PasswordHash)
	assert.Empty(t, user.RefreshToken)
}

func TestUserService_Register_DuplicateIdentifier(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.On("FindByUsernameOrEmail", ctx, "janedoe").
		Return(&entity.User{ID: uuid.New(), Username: "janedoe"}, nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Username: "janedoe",
		Password: "secret123",
		Avatar:   usecase.FileUpload{Path: "/tmp/avatar.png", ContentType: "image/png"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_TakenEmailRejectedBeforeUpload(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.On("FindByUsernameOrEmail", ctx, "freshname").
		Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("FindByUsernameOrEmail", ctx, "jane@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "jane@example.com"}, nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Username: "freshname",
		Password: "secret123",
		Avatar:   usecase.FileUpload{Path: "/tmp/avatar.png", ContentType: "image/png"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	m.mediaStorage.AssertNotCalled(t, "Upload", ctx, "/tmp/avatar.png", "image/png")
}

func TestUserService_Register_CleansUpBlobsWhenCreateFails(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.On("FindByUsernameOrEmail", ctx, "janedoe").
		Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("FindByUsernameOrEmail", ctx, "jane@example.com").
		Return(nil, repository.ErrUserNotFound)
	m.hasher.On("Hash", "secret123").Return("$2a$hashed", nil)
	m.mediaStorage.On("Upload", ctx, "/tmp/avatar.png", "image/png").
		Return(&service.MediaAsset{URL: "https://cdn/avatar.png", Key: "avatar-key"}, nil)
	// A concurrent registration won the unique index race.
	m.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)
	m.mediaStorage.On("Delete", ctx, "avatar-key").Return(nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Username: "janedoe",
		Password: "secret123",
		Avatar:   usecase.FileUpload{Path: "/tmp/avatar.png", ContentType: "image/png"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.On("FindByUsernameOrEmail", ctx, "janedoe").
		Return(&entity.User{ID: uuid.New(), Username: "janedoe", PasswordHash: "$2a$hashed"}, nil)
	m.hasher.On("Check", "wrong-password", "$2a$hashed").Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Username: "janedoe", Password: "wrong-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownIdentifier(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.On("FindByUsernameOrEmail", ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	// Indistinguishable from a wrong password.
	_, err := svc.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_PersistsRefreshTokenBeforeReturning(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.On("FindByUsernameOrEmail", ctx, "janedoe").
		Return(&entity.User{ID: userID, Username: "janedoe", PasswordHash: "$2a$hashed"}, nil)
	m.hasher.On("Check", "secret123", "$2a$hashed").Return(true)
	m.tokenService.On("GenerateTokens", userID).Return("access-1", "refresh-1", nil)
	m.userRepo.On("UpdateRefreshToken", ctx, userID, "refresh-1").Return(nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Username: "janedoe", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "access-1", out.AccessToken)
	assert.Equal(t, "refresh-1", out.RefreshToken)
	assert.Empty(t, out.User.PasswordHash)
}

func TestUserService_RefreshSession_RotatedOutTokenRejected(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	// The token verifies, but a second login already replaced it.
	m.tokenService.On("ValidateRefreshToken", "refresh-1").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	m.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, RefreshToken: "refresh-2"}, nil)

	_, err := svc.RefreshSession(ctx, "refresh-1")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshSession_RotatesPair(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.tokenService.On("ValidateRefreshToken", "refresh-1").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	m.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, RefreshToken: "refresh-1"}, nil)
	m.tokenService.On("GenerateTokens", userID).Return("access-2", "refresh-2", nil)
	m.userRepo.On("UpdateRefreshToken", ctx, userID, "refresh-2").Return(nil)

	out, err := svc.RefreshSession(ctx, "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "refresh-2", out.RefreshToken)
}

func TestUserService_RefreshSession_InvalidToken(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.tokenService.On("ValidateRefreshToken", "garbage").
		Return(nil, errors.New("token is expired"))

	_, err := svc.RefreshSession(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_ClearsStoredToken(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.On("UpdateRefreshToken", ctx, userID, "").Return(nil)

	require.NoError(t, svc.Logout(ctx, userID))
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, PasswordHash: "$2a$hashed"}, nil)
	m.hasher.On("Check", "wrong-old", "$2a$hashed").Return(false)

	err := svc.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID:      userID,
		OldPassword: "wrong-old",
		NewPassword: "newsecret",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_GetChannelDetails(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()
	channelID := uuid.New()
	viewerID := uuid.New()

	m.userRepo.On("FindByUsername", ctx, "janedoe").
		Return(&entity.User{ID: channelID, Username: "janedoe", FullName: "Jane Doe"}, nil)
	m.subscriptionRepo.On("CountSubscribers", ctx, channelID).Return(int64(42), nil)
	m.subscriptionRepo.On("CountSubscribedChannels", ctx, channelID).Return(int64(7), nil)
	m.subscriptionRepo.On("Find", ctx, viewerID, channelID).
		Return(&entity.Subscription{SubscriberID: viewerID, ChannelID: channelID}, nil)

	details, err := svc.GetChannelDetails(ctx, "JaneDoe", &viewerID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), details.SubscriberCount)
	assert.Equal(t, int64(7), details.SubscribedChannelsCount)
	assert.True(t, details.IsSubscribed)
}

func TestUserService_GetChannelDetails_UnknownChannel(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.userRepo.On("FindByUsername", ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetChannelDetails(ctx, "ghost", nil)
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}
