package ports

import (
	"context"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

// AuthService implements registration and login. Both return a freshly
// issued identity token alongside the stored user.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
