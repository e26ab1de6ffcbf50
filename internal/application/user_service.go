package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skillsnap/skillsnap-server/internal/domain/entity"
	repo "github.com/skillsnap/skillsnap-server/internal/domain/repository"
	"github.com/skillsnap/skillsnap-server/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// UserService covers registration and the login/token flow.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger}
}

// Register creates a new identity. The email doubles as the username, and
// only its bcrypt hash is persisted. Email matching is case-insensitive, so
// the stored value is normalized once here.
func (s *UserService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Username: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("register failed")
		}
		return nil, err
	}
	return u, nil
}

// Authenticate validates email/password and returns the user without issuing
// a token. Unknown email and wrong password are indistinguishable to callers.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and mints an access token for the verified identity.
func (s *UserService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", time.Time{}, err
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Email, u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}
