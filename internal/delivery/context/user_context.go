package context

import (
	"vidtube/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the key for storing the authenticated user in context.
const KeyCurrentUser ContextKey = "current_user"

// GetCurrentUser extracts the authenticated (sanitized) user from echo.Context.
// Returns nil when the request is unauthenticated.
func GetCurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyCurrentUser)).(*entity.User); ok {
		return user
	}

	return nil
}

// SetCurrentUser attaches the authenticated user to echo.Context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
}
