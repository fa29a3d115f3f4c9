package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"coursehub/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/google/uuid"
)

const (
	SessionName    = "coursehub.sid"
	SessionUserKey = "userId"

	ContextUserID = "userId"
	ContextUser   = "user"
)

type UserResolver interface {
	Resolve(ctx context.Context, sessionUserID, bearer string) (*domain.User, error)
}

// AuthMiddleware accepts either a session cookie or an Authorization: Bearer
// token and stores the resolved user in the gin context.
func AuthMiddleware(resolver UserResolver, store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionUserID string
		if s, err := store.Get(c.Request, SessionName); err == nil {
			sessionUserID, _ = s.Values[SessionUserKey].(string)
		}

		var bearer string
		if parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			bearer = strings.TrimSpace(parts[1])
		}

		user, err := resolver.Resolve(c.Request.Context(), sessionUserID, bearer)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated", "code": "unauthorized"})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error", "code": "internal"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)
		c.Next()
	}
}

// UserID returns the id stored by AuthMiddleware.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(ContextUserID)
	uid, _ := id.(uuid.UUID)
	return uid
}

func CurrentUser(c *gin.Context) *domain.User {
	u, _ := c.Get(ContextUser)
	user, _ := u.(*domain.User)
	return user
}
