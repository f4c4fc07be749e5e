package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	pkg_hash "github.com/Skotchmaster/product_catalog/pkg/hash"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
	"github.com/Skotchmaster/product_catalog/pkg/tokens"
)

type UserRepo interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUserIfNotExists(ctx context.Context, u *models.User) error
}

type AuthService struct {
	Repo      UserRepo
	JWTSecret []byte
	TokenTTL  time.Duration
	Events    events.Publisher
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

// unknown usernames are compared against this hash so both failure paths
// spend one bcrypt comparison. Its cost must stay equal to pkg_hash.Cost.
const dummyHash = "$2a$10$dXJ3SW6G7P50lGmMkkmwe.20cQQubK3.HZWzG3YB1tlRy.fqvM/BG"

// ValidateCredentials returns (nil, nil) when the username is unknown or the
// password does not match. The returned user carries no password hash.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pkg_hash.CheckPassword(dummyHash, password)
			return nil, nil
		}
		return nil, err
	}

	if !pkg_hash.CheckPassword(user.PasswordHash, password) {
		return nil, nil
	}

	safe := *user
	safe.PasswordHash = ""
	return &safe, nil
}

func (s *AuthService) Login(ctx context.Context, user *models.User) (*LoginResult, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	exp := time.Now().Add(ttl)

	token, err := tokens.NewAccessToken(s.JWTSecret, strconv.FormatUint(uint64(user.ID), 10), user.Username, user.Roles, exp)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	logging.FromContext(ctx).Info("login_successful", "user_id", user.ID)
	return &LoginResult{AccessToken: token, ExpiresAt: exp}, nil
}

func (s *AuthService) Authenticate(ctx context.Context, req transport.LoginRequest) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.authenticate", "username", req.Username)

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	user, err := s.ValidateCredentials(ctx, req.Username, req.Password)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}
	if user == nil {
		l.Warn("login_failed", "status", 401, "reason", "invalid username or password")
		return nil, ErrInvalidCredentials
	}

	return s.Login(ctx, user)
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	pwHash, err := pkg_hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: pwHash,
		Roles:        []string{models.RoleUser},
	}

	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_error", "status", 409, "reason", "user already exist")
			return nil, fmt.Errorf("%w: username %q is taken", ErrConflict, req.Username)
		}
		l.Error("register_error", "status", 500, "reason", "cannot create user", "error", err)
		return nil, err
	}

	events.Emit(ctx, s.Events, events.TopicUsers, user.ID, map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	user.PasswordHash = ""
	return &user, nil
}

// Profile echoes the identity carried by a verified token.
func (s *AuthService) Profile(claims *tokens.AccessClaims) (*transport.ProfileResponse, error) {
	if claims == nil {
		return nil, ErrInvalidCredentials
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidCredentials, claims.Subject)
	}
	roles := claims.Roles
	if roles == nil {
		roles = []string{}
	}
	return &transport.ProfileResponse{UserID: uint(id), Username: claims.Username, Roles: roles}, nil
}
