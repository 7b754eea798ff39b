package memory

import (
	"context"
	"sync"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

// UserStore is the in-memory user directory. Usernames are unique with a
// case-sensitive exact match; ids are sequential and assigned at creation.
// Users are never deleted or mutated once stored.
type UserStore struct {
	mu     sync.RWMutex
	users  []*domain.User
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}

	stored := *user
	stored.ID = s.nextID
	s.nextID++
	s.users = append(s.users, &stored)

	out := stored
	return &out, nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
