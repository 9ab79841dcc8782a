package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("user already exists")

// UserStore holds the provisioned accounts in memory. Lookups are linear
// scans, which is fine for the single seeded account this service carries.
type UserStore struct {
	mu    sync.RWMutex
	users []User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Seed provisions accounts at process start. Usernames must be unique.
func (s *UserStore) Seed(ctx context.Context, users []User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range users {
		for _, existing := range s.users {
			if existing.Username == user.Username {
				return fmt.Errorf("%w: %s", ErrUserExists, user.Username)
			}
		}
		s.users = append(s.users, user)
	}

	return nil
}

func (s *UserStore) UserByUsername(ctx context.Context, username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}

	return User{}, ErrUserNotFound
}

// UserByToken resolves the account currently holding the token. An empty
// token never matches, even before any login has set one.
func (s *UserStore) UserByToken(ctx context.Context, token string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if token == "" {
		return User{}, ErrUserNotFound
	}

	for _, user := range s.users {
		if user.SessionToken == token {
			return user, nil
		}
	}

	return User{}, ErrUserNotFound
}

// SetToken attaches a new session token to the account, replacing the
// previous one. The replaced token stops resolving immediately.
func (s *UserStore) SetToken(ctx context.Context, username string, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			s.users[i].SessionToken = token
			return nil
		}
	}

	return ErrUserNotFound
}
