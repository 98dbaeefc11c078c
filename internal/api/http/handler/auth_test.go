package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/coinvest-server/internal/api/http/context"
	hmocks "github.com/dtroode/coinvest-server/internal/api/http/handler/mocks"
	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/service"
	"github.com/dtroode/coinvest-server/internal/testutil"
)

func newAuthRouter(svc AuthService, secure bool) (*gin.Engine, *httpctx.Manager) {
	cm := httpctx.NewManager()
	h := NewAuth(svc, cm, CookieOptions{Name: "auth_token", Secure: secure}, testutil.MakeNoopLogger())

	r := gin.New()
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)
	r.POST("/api/logout", h.Logout)
	return r, cm
}

func TestAuth_Register(t *testing.T) {
	svc := hmocks.NewAuthService(t)
	user := model.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", Password: "scrypt:aa:bb"}
	svc.On("Register", mock.Anything, service.RegisterParams{Username: "alice", Email: "alice@example.com", Password: "hunter22"}).
		Return(service.Session{User: user, Token: "tok", TTL: 7 * 24 * time.Hour}, nil)

	r, _ := newAuthRouter(svc, true)
	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "hunter22",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "scrypt")
	assert.Contains(t, w.Body.String(), user.ID.String())

	c := findCookie(w, "auth_token")
	require.NotNil(t, c)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, 604800, c.MaxAge)
}

func TestAuth_Register_Validation(t *testing.T) {
	bodies := []any{
		`{not json`,
		map[string]string{"username": "a", "email": "a@b.c"},
		map[string]string{"username": "a", "email": "not-an-email", "password": "secret1"},
		map[string]string{"username": "a", "email": "a@b.c", "password": "12345"},
		map[string]string{"email": "a@b.c", "password": "secret1"},
	}

	for _, body := range bodies {
		r, _ := newAuthRouter(hmocks.NewAuthService(t), false)
		w := doJSON(t, r, http.MethodPost, "/api/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
		assert.Contains(t, w.Body.String(), "Invalid input")
	}
}

func TestAuth_Register_Taken(t *testing.T) {
	svc := hmocks.NewAuthService(t)
	svc.On("Register", mock.Anything, mock.Anything).Return(service.Session{}, model.ErrAlreadyExists)

	r, _ := newAuthRouter(svc, false)
	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "hunter22",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Username already exists"}`, w.Body.String())
	assert.Nil(t, findCookie(w, "auth_token"))
}

func TestAuth_Login(t *testing.T) {
	svc := hmocks.NewAuthService(t)
	user := model.User{ID: uuid.New(), Username: "alice"}
	svc.On("Login", mock.Anything, "alice", "hunter22").Return(service.Session{User: user, Token: "tok", TTL: time.Hour}, nil)
	svc.On("Login", mock.Anything, "alice", "wrong").Return(service.Session{}, model.ErrInvalidCredentials)

	r, _ := newAuthRouter(svc, false)

	w := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	c := findCookie(w, "auth_token")
	require.NotNil(t, c)
	assert.False(t, c.Secure)
	assert.Equal(t, 3600, c.MaxAge)

	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuth_Login_ServerError(t *testing.T) {
	svc := hmocks.NewAuthService(t)
	svc.On("Login", mock.Anything, "alice", "pw").Return(service.Session{}, errors.New("failed to sign token: missing secret"))

	r, _ := newAuthRouter(svc, false)
	w := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "pw"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
}

func TestAuth_Logout(t *testing.T) {
	r, _ := newAuthRouter(hmocks.NewAuthService(t), false)

	w := doJSON(t, r, http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	c := findCookie(w, "auth_token")
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.True(t, c.MaxAge < 0)
}

func TestAuth_CurrentUser(t *testing.T) {
	svc := hmocks.NewAuthService(t)
	cm := httpctx.NewManager()
	h := NewAuth(svc, cm, CookieOptions{Name: "auth_token"}, testutil.MakeNoopLogger())

	known, gone, broken := uuid.New(), uuid.New(), uuid.New()
	svc.On("CurrentUser", mock.Anything, known).Return(model.User{ID: known, Username: "alice"}, nil)
	svc.On("CurrentUser", mock.Anything, gone).Return(model.User{}, model.ErrNotFound)
	svc.On("CurrentUser", mock.Anything, broken).Return(model.User{}, errors.New("db"))

	as := func(id uuid.UUID) gin.HandlerFunc {
		return func(c *gin.Context) {
			if id != uuid.Nil {
				c.Request = c.Request.WithContext(cm.SetUserIDToContext(c.Request.Context(), id))
			}
		}
	}

	r := gin.New()
	r.GET("/anon", as(uuid.Nil), h.CurrentUser)
	r.GET("/known", as(known), h.CurrentUser)
	r.GET("/gone", as(gone), h.CurrentUser)
	r.GET("/broken", as(broken), h.CurrentUser)

	w := doJSON(t, r, http.MethodGet, "/known", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"`+known.String()+`","username":"alice"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, r, http.MethodGet, "/anon", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, r, http.MethodGet, "/gone", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, doJSON(t, r, http.MethodGet, "/broken", nil).Code)
}
