// Package middleware contains the HTTP middlewares for the application.
package middleware

import (
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CookieAccessToken is the cookie carrying the access token for browser clients.
const CookieAccessToken = "accessToken"

// CookieRefreshToken is the cookie carrying the refresh token.
const CookieRefreshToken = "refreshToken"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the access token and loads the account behind it.
// The token comes from the Authorization header or the accessToken cookie;
// every failure is a plain 401, no distinction leaks to the client.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Token for a deleted account.
				return domainerrors.ErrUnauthorized
			}

			return errors.Wrap(err, "failed to load authenticated user")
		}

		deliverycontext.SetCurrentUser(c, user.Sanitized())

		return next(c)
	}
}

// OptionalAuthenticate loads the account when a valid token is present but
// lets anonymous requests through. Used by reads that personalize output.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return next(c)
		}

		if user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID); err == nil {
			deliverycontext.SetCurrentUser(c, user.Sanitized())
		}

		return next(c)
	}
}

// extractToken pulls the access token from the Authorization header, falling
// back to the accessToken cookie for browser clients.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}

		return ""
	}

	if cookie, err := c.Cookie(CookieAccessToken); err == nil {
		return cookie.Value
	}

	return ""
}
