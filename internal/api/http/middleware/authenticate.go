package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/token"
)

// UserResolver loads the account behind an authenticated request.
type UserResolver interface {
	CurrentUser(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Authenticate reads the session cookie and puts the verified user ID on the request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Handle never rejects: requests without a valid session simply carry no user ID.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(m.cookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims := m.tokenManager.Verify(raw)
		if claims == nil {
			m.logger.Debug("Authenticate middleware: session cookie rejected",
				"path", c.FullPath())
			c.Next()
			return
		}

		userID, ok := token.Subject(claims)
		if !ok {
			m.logger.Debug("Authenticate middleware: token without usable subject")
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(m.contextManager.SetUserIDToContext(c.Request.Context(), userID))
		c.Next()
	}
}

// RequireUser aborts with 401 unless Handle attached a user ID.
func (m *Authenticate) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.contextManager.GetUserIDFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// Admin admits only authenticated users flagged as administrators.
type Admin struct {
	users          UserResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAdmin(users UserResolver, contextManager model.ContextManager, logger *logger.Logger) *Admin {
	return &Admin{
		users:          users,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (m *Admin) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := m.contextManager.GetUserIDFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		user, err := m.users.CurrentUser(c.Request.Context(), userID)
		if errors.Is(err, model.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if err != nil {
			m.logger.Error("Admin middleware: failed to load user",
				"user_id", userID,
				"error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		if !user.IsAdmin {
			m.logger.Info("Admin middleware: access denied",
				"user_id", userID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Next()
	}
}
