package service

import (
	"fmt"

	"smartstore/internal/domain"
	"smartstore/internal/repository"

	"go.uber.org/zap"
)

// AuthenticationService manages user accounts on top of a UserRepository.
// Credential policy (hashing, tokens) is an external concern.
type AuthenticationService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewAuthenticationService(users repository.UserRepository, logger *zap.Logger) *AuthenticationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthenticationService{users: users, logger: logger}
}

// RegisterUser creates a new user account.
func (s *AuthenticationService) RegisterUser(email, password, name string) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateEntity("register user", fmt.Sprintf("user %s already exists", email))
	}
	user := domain.NewUser(email, password, name)
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.String("email", email))
	return user, nil
}

// UpdateUser replaces the password and name of an existing user.
func (s *AuthenticationService) UpdateUser(email, password, name string) (*domain.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	user.Password = password
	user.Name = name
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user account.
func (s *AuthenticationService) DeleteUser(email string) error {
	return s.users.Delete(email)
}

// GetUserByEmail looks up a user account.
func (s *AuthenticationService) GetUserByEmail(email string) (*domain.User, error) {
	return s.users.FindByEmail(email)
}

// UserExists reports whether an account exists for email.
func (s *AuthenticationService) UserExists(email string) (bool, error) {
	return s.users.ExistsByEmail(email)
}

// GetAllUsers returns every account keyed by email.
func (s *AuthenticationService) GetAllUsers() (map[string]*domain.User, error) {
	return s.users.FindAll()
}
