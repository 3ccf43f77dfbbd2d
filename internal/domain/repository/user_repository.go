package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/devconnector-api/internal/domain/entity"
)

// Sentinel errors surfaced by repository implementations so services can map
// them without depending on storage details.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
