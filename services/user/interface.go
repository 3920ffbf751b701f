package user

import (
	"errors"

	userRepo "homeserv/database/repository/user"
	"homeserv/models"
)

// ErrEmailTaken is returned when signing up with an already registered email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials is returned when the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = userRepo.ErrNotFound

// AuthResponse contains the authenticated user's identity and token.
type AuthResponse struct {
	ID    string `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserService handles customer signup, login and profile lookup.
type UserService interface {
	Register(reg models.UserRegistration) (*models.User, error)
	Authenticate(email, password, clientIP string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
