package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shelterworks/shelter-api/internal/api/metrics"
	"github.com/shelterworks/shelter-api/internal/core/domain"
	"github.com/shelterworks/shelter-api/internal/core/ports"
	"github.com/shelterworks/shelter-api/internal/core/token"
)

// AuthService implements registration and login against the user directory.
type AuthService struct {
	users ports.UserRepository
	codec *token.Codec
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, log: log}
}

// Register hashes the password, stores the user with the next sequential id,
// and returns a freshly issued token alongside the stored record. The role
// silently defaults to "user" when absent.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (string, *domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return "", nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "failure").Inc()
		return "", nil, err
	}

	tkn, err := s.codec.Issue(created.ID, created.Username, created.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")

	return tkn, created, nil
}

// Login verifies the credentials and issues a token. Unknown usernames and
// wrong passwords both surface domain.ErrInvalidCredentials so a caller
// cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	s.log.Info().Str("username", user.Username).Msg("user logged in")

	return tkn, user, nil
}

// SeedAdmin creates the built-in administrator account at startup. An already
// existing account is not an error, so restarts with a shared directory (or
// repeated seeding in tests) stay idempotent.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) error {
	_, _, err := s.Register(ctx, username, password, domain.RoleAdmin)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}
