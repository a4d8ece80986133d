package repository

import (
	"fmt"
	"sync"

	"smartstore/internal/data"
	"smartstore/internal/domain"
)

const usersKey = "users"

// UserRepository is the user data access contract consumed by the
// authentication service.
type UserRepository interface {
	FindByEmail(email string) (*domain.User, error)
	Save(user *domain.User) error
	Delete(email string) error
	ExistsByEmail(email string) (bool, error)
	FindAll() (map[string]*domain.User, error)
}

// MemoryUserRepository keeps users in the DataStore under the "users" key.
type MemoryUserRepository struct {
	mu   sync.RWMutex
	data *data.DataStore
}

// NewMemoryUserRepository creates the repository and seeds the default users
// when the "users" collection does not exist yet.
func NewMemoryUserRepository(ds *data.DataStore) *MemoryUserRepository {
	if !ds.Contains(usersKey) {
		users := map[string]*domain.User{
			"admin@store.com": domain.NewUser("admin@store.com", "admin123", "Admin User"),
			"user@store.com":  domain.NewUser("user@store.com", "user123", "Regular User"),
		}
		ds.Put(usersKey, users)
	}
	return &MemoryUserRepository{data: ds}
}

// users returns the shared user map. Callers must hold r.mu.
func (r *MemoryUserRepository) users() map[string]*domain.User {
	value, ok := r.data.Get(usersKey)
	if !ok {
		users := make(map[string]*domain.User)
		r.data.Put(usersKey, users)
		return users
	}
	return value.(map[string]*domain.User)
}

func (r *MemoryUserRepository) FindByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, exists := r.users()[email]
	if !exists {
		return nil, domain.NewNotFound("find user", fmt.Sprintf("user %s not found", email))
	}
	return user, nil
}

func (r *MemoryUserRepository) Save(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := r.users()
	users[user.Email] = user
	r.data.Put(usersKey, users)
	return nil
}

func (r *MemoryUserRepository) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := r.users()
	if _, exists := users[email]; !exists {
		return domain.NewNotFound("delete user", fmt.Sprintf("user %s not found", email))
	}
	delete(users, email)
	r.data.Put(usersKey, users)
	return nil
}

func (r *MemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.users()[email]
	return exists, nil
}

func (r *MemoryUserRepository) FindAll() (map[string]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*domain.User)
	for email, user := range r.users() {
		out[email] = user
	}
	return out, nil
}
