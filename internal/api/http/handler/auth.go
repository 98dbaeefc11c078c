package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/service"
)

// AuthService defines registration, login and session lookup.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (service.Session, error)
	Login(ctx context.Context, username, password string) (service.Session, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (model.User, error)
}

// CookieOptions control the session cookie.
type CookieOptions struct {
	Name   string
	Secure bool
}

// Auth handles the account endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	cookie         CookieOptions
	logger         *logger.Logger
}

func NewAuth(authService AuthService, contextManager model.ContextManager, cookie CookieOptions, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		cookie:         cookie,
		logger:         logger,
	}
}

func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	session, err := h.authService.Register(c.Request.Context(), service.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token, int(session.TTL.Seconds()))
	c.JSON(http.StatusCreated, gin.H{"user": newUserResponse(session.User)})
}

func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token, int(session.TTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(session.User)})
}

// Logout expires the cookie. Tokens stay valid until exp; there is no server-side session.
func (h *Auth) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Auth) CurrentUser(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

// setSessionCookie writes the auth cookie; a negative maxAge deletes it.
func (h *Auth) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
