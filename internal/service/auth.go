package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
	"github.com/dtroode/coinvest-server/internal/token"
)

// CredentialHasher derives and checks stored password records.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

type Auth struct {
	userStore    model.UserStore
	leadStore    model.LeadStore
	hasher       CredentialHasher
	tokenManager model.TokenManager
	tokenTTL     time.Duration
	logger       *logger.Logger
	now          func() time.Time

	dummyOnce   sync.Once
	dummyRecord string
}

func NewAuth(
	userStore model.UserStore,
	leadStore model.LeadStore,
	hasher CredentialHasher,
	tokenManager model.TokenManager,
	tokenTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	if tokenTTL <= 0 {
		tokenTTL = token.DefaultTTL
	}
	return &Auth{
		userStore:    userStore,
		leadStore:    leadStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		tokenTTL:     tokenTTL,
		logger:       logger,
		now:          time.Now,
	}
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// Session is an authenticated user together with the token proving it.
type Session struct {
	User  model.User
	Token string
	TTL   time.Duration
}

func (a *Auth) Register(ctx context.Context, params RegisterParams) (Session, error) {
	username := strings.TrimSpace(params.Username)
	email := strings.TrimSpace(params.Email)

	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	existing, err := a.userStore.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: username already taken",
			"username", username)
		return Session{}, model.ErrAlreadyExists
	}

	record, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", username,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  record,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		a.logger.Info("Auth service: username or email already taken",
			"username", username)
		return Session{}, model.ErrAlreadyExists
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	if a.leadStore != nil {
		if err := a.leadStore.MarkConvertedByEmail(ctx, email); err != nil {
			a.logger.Warn("Auth service: failed to mark lead as converted",
				"user_id", user.ID,
				"error", err.Error())
		}
	}

	session, err := a.newSession(user)
	if err != nil {
		return Session{}, err
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"username", username)

	return session, nil
}

// Login checks username and password. Unknown users, unreadable credential
// records and wrong passwords all yield model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		// Unknown usernames pay for one scrypt run too.
		a.hasher.Verify(password, a.dummy())
		a.logger.Info("Auth service: login rejected",
			"username", username)
		return Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.Password) {
		a.logger.Info("Auth service: login rejected",
			"username", username)
		return Session{}, model.ErrInvalidCredentials
	}

	session, err := a.newSession(user)
	if err != nil {
		return Session{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return session, nil
}

// dummy returns a credential record that matches no password a client can send.
func (a *Auth) dummy() string {
	a.dummyOnce.Do(func() {
		record, err := a.hasher.Hash(uuid.NewString())
		if err != nil {
			a.logger.Error("Auth service: failed to prepare dummy credential record",
				"error", err.Error())
			return
		}
		a.dummyRecord = record
	})
	return a.dummyRecord
}

func (a *Auth) CurrentUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (a *Auth) newSession(user model.User) (Session, error) {
	signed, err := a.tokenManager.Issue(map[string]any{
		token.ClaimSubject:  user.ID.String(),
		token.ClaimUsername: user.Username,
	}, a.tokenTTL)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return Session{
		User:  user,
		Token: signed,
		TTL:   a.tokenTTL,
	}, nil
}
