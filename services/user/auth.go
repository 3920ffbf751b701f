package user

import (
	"fmt"
	"time"

	"homeserv/models"
	"homeserv/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new customer account. The email must not already be
// registered.
func (s *DefaultUserService) Register(reg models.UserRegistration) (*models.User, error) {
	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		Address:      reg.Address,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(user); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return user, nil
}

// Authenticate verifies the password, issues a JWT and records the login
// session in Redis.
func (s *DefaultUserService) Authenticate(email, password, clientIP string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, "user", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := utils.AuthSession{
		SubjectID: userRec.ID,
		Email:     userRec.Email,
		Role:      "user",
		IP:        clientIP,
		CreatedAt: time.Now(),
		TokenHash: utils.HashToken(token),
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), userRec.ID, session); err != nil {
		utils.GetLogger().Warn("Authenticate: failed to save auth session", zap.String("userID", userRec.ID), zap.Error(err))
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Name:  userRec.Name,
		Email: userRec.Email,
		Token: token,
	}, nil
}

// GetByID returns the user profile.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}
