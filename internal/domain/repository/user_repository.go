package repository

import (
	"context"
	"errors"

	"github.com/skillsnap/skillsnap-server/internal/domain/entity"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for identity-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	EnsureRole(ctx context.Context, name string) (string, error)
	AssignRole(ctx context.Context, userID, roleID string) error
}
