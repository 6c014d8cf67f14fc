package repository

import (
	"context"
	"sync"

	"ycliu87/Car-Garage/internal/api/models"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create stores a new user keyed by username.
	Create(ctx context.Context, user models.User) error
	// GetByUsername returns the user or (nil, nil) when absent. A missing
	// user is not an application error; callers decide what it means.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByEmail returns the user holding email or (nil, nil).
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
	order []string
}

// NewMemoryUserRepository creates the default in-memory UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]models.User),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return models.ErrConflict
	}
	r.users[user.Username] = user
	r.order = append(r.order, user.Username)
	return nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// FindByEmail scans every stored user. O(n) per call, acceptable at this scale.
func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, username := range r.order {
		user := r.users[username]
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}
