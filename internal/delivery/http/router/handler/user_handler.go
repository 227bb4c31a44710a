package handler

import (
	"context"
	"log/slog"
	"net/http"

	"vidtube/config"
	"vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/response"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"
	"vidtube/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Register handles the account registration request (multipart form).
func (h *UserHandler) Register(c echo.Context) error {
	avatarHeader, err := c.FormFile("avatar")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("avatar image is required")
	}
	if !validation.IsImageFile(avatarHeader) {
		return domainerrors.ErrValidationFailed.WithDetails("avatar must be an image file")
	}

	avatar, err := spoolFormFile(avatarHeader, h.cfg.Storage.TempDir)
	if err != nil {
		return errors.WithStack(err)
	}
	defer removeSpooled(avatar)

	input := usecase.RegisterInput{
		FullName: c.FormValue("fullName"),
		Email:    c.FormValue("email"),
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Avatar:   *avatar,
	}

	if coverHeader, err := c.FormFile("coverImage"); err == nil {
		if !validation.IsImageFile(coverHeader) {
			return domainerrors.ErrValidationFailed.WithDetails("coverImage must be an image file")
		}

		cover, err := spoolFormFile(coverHeader, h.cfg.Storage.TempDir)
		if err != nil {
			return errors.WithStack(err)
		}
		defer removeSpooled(cover)
		input.Cover = cover
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User registered successfully")
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login handles the login request and plants the session cookies.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output)

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout clears the stored session and drops the session cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// RefreshTokenRequest is the refresh request body for non-browser clients.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken rotates the session token pair. The refresh token comes from
// the cookie or, for non-browser clients, the request body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(middleware.CookieRefreshToken); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req RefreshTokenRequest
		if err := c.Bind(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	output, err := h.uc.RefreshSession(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output)

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// ChangePasswordRequest is the password change request body.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ChangePassword verifies the old password and stores the new one.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err = h.uc.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// CurrentUser returns the authenticated account.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "Current user retrieved successfully")
}

// UpdateProfileRequest is the profile update request body.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// UpdateProfile applies the supplied text fields to the account.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID:   user.ID,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Profile updated successfully")
}

// UpdateAvatar replaces the account's avatar image.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.updateImage(c, "avatar", h.uc.UpdateAvatar, "Avatar updated successfully")
}

// UpdateCoverImage replaces the account's cover image.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.updateImage(c, "coverImage", h.uc.UpdateCoverImage, "Cover image updated successfully")
}

func (h *UserHandler) updateImage(
	c echo.Context,
	field string,
	update func(ctx context.Context, userID uuid.UUID, upload usecase.FileUpload) (*entity.User, error),
	message string,
) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(field + " file is required")
	}
	if !validation.IsImageFile(fileHeader) {
		return domainerrors.ErrValidationFailed.WithDetails(field + " must be an image file")
	}

	upload, err := spoolFormFile(fileHeader, h.cfg.Storage.TempDir)
	if err != nil {
		return errors.WithStack(err)
	}
	defer removeSpooled(upload)

	updated, err := update(c.Request().Context(), user.ID, *upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, message)
}

// ChannelProfile returns the channel view of an account by username.
func (h *UserHandler) ChannelProfile(c echo.Context) error {
	details, err := h.uc.GetChannelDetails(c.Request().Context(), c.Param("username"), viewerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Channel profile retrieved successfully")
}

// setSessionCookies plants the token pair as httpOnly cookies for browser
// clients. API clients read the pair from the response body instead.
func (h *UserHandler) setSessionCookies(c echo.Context, output *usecase.SessionOutput) {
	maxAge := int(h.tokenSvc.RefreshTokenDuration().Seconds())
	c.SetCookie(sessionCookie(middleware.CookieAccessToken, output.AccessToken, maxAge))
	c.SetCookie(sessionCookie(middleware.CookieRefreshToken, output.RefreshToken, maxAge))
}

func (h *UserHandler) clearSessionCookies(c echo.Context) {
	c.SetCookie(sessionCookie(middleware.CookieAccessToken, "", -1))
	c.SetCookie(sessionCookie(middleware.CookieRefreshToken, "", -1))
}

func sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
