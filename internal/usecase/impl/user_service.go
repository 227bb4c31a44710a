// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"
	"vidtube/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	mediaStorage     service.MediaStorage
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	MediaStorage     service.MediaStorage
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mediaStorage:     params.MediaStorage,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account: validate, reject taken identifiers, hash
// the password, push the avatar (and optional cover) to the media host, then
// persist the row inside one transaction.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := validation.RegisterInput(input.FullName, input.Email, input.Username, input.Password); err != nil {
		return nil, err
	}
	if input.Avatar.Path == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("avatar image is required")
	}

	username := strings.ToLower(validation.NormalizeText(input.Username))
	email := validation.NormalizeText(input.Email)

	// Cheap pre-check on both identifiers before touching the media host;
	// the unique indexes still close the race at create time.
	for _, identifier := range []string{username, email} {
		if _, err := srv.userRepo.FindByUsernameOrEmail(ctx, identifier); err == nil {
			return nil, domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check existing user")
		}
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	avatar, err := srv.mediaStorage.Upload(ctx, input.Avatar.Path, input.Avatar.ContentType)
	if err != nil {
		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	var cover *service.MediaAsset
	if input.Cover != nil && input.Cover.Path != "" {
		cover, err = srv.mediaStorage.Upload(ctx, input.Cover.Path, input.Cover.ContentType)
		if err != nil {
			srv.cleanupAssets(ctx, avatar.Key)

			return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
		}
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		FullName:     validation.NormalizeText(input.FullName),
		PasswordHash: passwordHash,
		Avatar:       entity.MediaRef{URL: avatar.URL, Key: avatar.Key},
	}
	if cover != nil {
		user.CoverImage = entity.MediaRef{URL: cover.URL, Key: cover.Key}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		// The row never existed, so the uploaded assets are orphans.
		keys := []string{avatar.Key}
		if cover != nil {
			keys = append(keys, cover.Key)
		}
		srv.cleanupAssets(ctx, keys...)

		return nil, err
	}

	srv.log(ctx).Info("user registered",
		slog.String("userID", user.ID.String()), slog.String("username", username))

	return user.Sanitized(), nil
}

// Login verifies credentials and mints a session. The refresh token is
// persisted before the pair is returned; each login overwrites the previous
// session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	if err := validation.LoginInput(input.Username, input.Email, input.Password); err != nil {
		return nil, err
	}

	identifier := strings.ToLower(validation.NormalizeText(input.Username))
	if identifier == "" {
		identifier = validation.NormalizeText(input.Email)
	}

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Unknown identifier and wrong password are indistinguishable.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.mintSession(ctx, user)
}

// Logout clears the stored refresh token, ending the single active session.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.UpdateRefreshToken(ctx, userID, ""); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to clear refresh token")
	}

	return nil
}

// RefreshSession rotates the token pair. The presented token must verify AND
// match the stored value exactly; a rotated-out token is rejected.
func (srv *userService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	return srv.mintSession(ctx, user)
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (srv *userService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	if err := validation.ChangePasswordInput(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrValidationFailed.WithDetails("old password is incorrect")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user.PasswordHash = newHash

	return srv.userRepo.Update(ctx, user)
}

// UpdateProfile applies the supplied text fields to the account.
func (srv *userService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	if err := validation.UpdateProfileInput(input.FullName, input.Email); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for profile update")
	}

	if fullName := validation.NormalizeText(input.FullName); fullName != "" {
		user.FullName = fullName
	}
	if email := validation.NormalizeText(input.Email); email != "" {
		user.Email = email
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

// UpdateAvatar replaces the avatar asset: upload, persist, then drop the old
// blob. The old-blob delete is best-effort; the new avatar is already live.
func (srv *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, upload usecase.FileUpload) (*entity.User, error) {
	return srv.replaceImage(ctx, userID, upload,
		func(u *entity.User) *entity.MediaRef { return &u.Avatar })
}

// UpdateCoverImage replaces the cover image asset with the same ordering as
// UpdateAvatar.
func (srv *userService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, upload usecase.FileUpload) (*entity.User, error) {
	return srv.replaceImage(ctx, userID, upload,
		func(u *entity.User) *entity.MediaRef { return &u.CoverImage })
}

func (srv *userService) replaceImage(
	ctx context.Context,
	userID uuid.UUID,
	upload usecase.FileUpload,
	ref func(*entity.User) *entity.MediaRef,
) (*entity.User, error) {
	if upload.Path == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image file is required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for image update")
	}

	asset, err := srv.mediaStorage.Upload(ctx, upload.Path, upload.ContentType)
	if err != nil {
		return nil, domainerrors.ErrMediaUploadFailed.WrapMessage(err.Error())
	}

	oldKey := ref(user).Key
	*ref(user) = entity.MediaRef{URL: asset.URL, Key: asset.Key}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.cleanupAssets(ctx, asset.Key)

		return nil, err
	}

	// Old asset only goes after the row points at the new one.
	srv.cleanupAssets(ctx, oldKey)

	return user.Sanitized(), nil
}

// GetChannelDetails assembles the channel view of an account.
func (srv *userService) GetChannelDetails(ctx context.Context, username string, viewerID *uuid.UUID) (*entity.ChannelDetails, error) {
	username = strings.ToLower(validation.NormalizeText(username))
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrChannelNotFound
		}

		return nil, errors.Wrap(err, "failed to load channel")
	}

	subscriberCount, err := srv.subscriptionRepo.CountSubscribers(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	subscribedCount, err := srv.subscriptionRepo.CountSubscribedChannels(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribed channels")
	}

	isSubscribed := false
	if viewerID != nil {
		if _, err := srv.subscriptionRepo.Find(ctx, *viewerID, user.ID); err == nil {
			isSubscribed = true
		} else if !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, errors.Wrap(err, "failed to check subscription")
		}
	}

	return &entity.ChannelDetails{
		ID:                      user.ID,
		Username:                user.Username,
		FullName:                user.FullName,
		Avatar:                  user.Avatar.URL,
		CoverImage:              user.CoverImage.URL,
		SubscriberCount:         subscriberCount,
		SubscribedChannelsCount: subscribedCount,
		IsSubscribed:            isSubscribed,
	}, nil
}

// mintSession issues a token pair and persists the refresh token before
// handing the pair out.
func (srv *userService) mintSession(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, domainerrors.ErrTokenGeneration.WrapMessage(err.Error())
	}

	if err := srv.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitized(),
	}, nil
}

// cleanupAssets best-effort deletes blobs that lost their owning row.
func (srv *userService) cleanupAssets(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := srv.mediaStorage.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("failed to delete orphaned media asset",
				slog.String("key", key), slog.Any("error", err))
		}
	}
}
