package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pablotzeliks/todolist-api/internal/constants"
	apierrors "github.com/pablotzeliks/todolist-api/internal/errors"
	"github.com/pablotzeliks/todolist-api/internal/services"
)

// RequireBasicAuth authenticates every request in the group via HTTP Basic
// Auth and stores the resolved user ID in the request context.
func RequireBasicAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authService.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoCredentials),
				errors.Is(err, services.ErrInvalidCredentials):
				apierrors.Unauthorized(c, err.Error())
			default:
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}
