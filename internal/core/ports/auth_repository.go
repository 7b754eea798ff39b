package ports

import (
	"context"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

// UserRepository is the user directory: credentials and roles, looked up by
// exact (case-sensitive) username.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create assigns the next sequential id and stores the user. Fails with
	// domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
