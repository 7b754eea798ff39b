package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shelterworks/shelter-api/internal/core/domain"
	"github.com/shelterworks/shelter-api/internal/core/token"
	"github.com/shelterworks/shelter-api/internal/infrastructure/store/memory"
	"github.com/shelterworks/shelter-api/pkg/logger"
)

func newTestAuthService() (*AuthService, *token.Codec) {
	codec := token.NewCodec("test-secret", time.Hour)
	log := logger.Init(logger.Options{Level: "error"})
	return NewAuthService(memory.NewUserStore(), codec, log), codec
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	tkn, user, err := svc.Register(context.Background(), "alice", "secret1", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role to default to user, got %q", user.Role)
	}
	if user.ID != 1 {
		t.Fatalf("expected id 1, got %d", user.ID)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, _, err := svc.Register(context.Background(), "bob", "secret1", "owner"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "alice", "secret1", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(ctx, "alice", "other12", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, codec := newTestAuthService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "alice", "secret1", domain.RoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}

	tkn, user, err := svc.Login(ctx, "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := codec.Verify(tkn)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID() != user.ID || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, _ = svc.Register(ctx, "alice", "secret1", "")
	if _, _, err := svc.Login(ctx, "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIsGeneric(t *testing.T) {
	svc, _ := newTestAuthService()

	// An unknown username must be indistinguishable from a bad password.
	if _, _, err := svc.Login(context.Background(), "ghost", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SeedAdmin_Idempotent(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if err := svc.SeedAdmin(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.SeedAdmin(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("second seed should be a no-op, got %v", err)
	}

	_, user, err := svc.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
}
