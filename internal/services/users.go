package services

import (
	"strings"
	"sync"

	"qpg-backend/internal/models"
)

// UserStore is an in-memory registry keyed by email. Registration is
// an upsert; there is no persistence by design.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

// Register stores the user, replacing any previous registration under
// the same email. New users start with one free credit unless the
// payload says otherwise.
func (s *UserStore) Register(user models.User) (models.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return models.User{}, &ValidationError{Message: "Email is required."}
	}
	if strings.TrimSpace(user.Username) == "" {
		return models.User{}, &ValidationError{Message: "Username is required."}
	}
	if user.CreditsLeft == 0 {
		user.CreditsLeft = 1
	}

	s.mu.Lock()
	s.users[user.Email] = user
	s.mu.Unlock()

	return user, nil
}

// Get returns the user registered under email.
func (s *UserStore) Get(email string) (models.User, error) {
	s.mu.RLock()
	user, ok := s.users[email]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, &NotFoundError{Message: "User not found."}
	}
	return user, nil
}
