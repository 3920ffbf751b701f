package professional

import (
	"errors"
	"fmt"
	"time"

	professionalRepo "homeserv/database/repository/professional"
	"homeserv/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotFound is returned when no active professional matches the email.
var ErrNotFound = professionalRepo.ErrNotFound

// ErrInvalidPassword is returned when the password does not match.
var ErrInvalidPassword = errors.New("invalid password")

// AuthResponse contains the authenticated professional's identity and token.
type AuthResponse struct {
	ID    int64  `json:"professional_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ProfessionalService handles professional login.
type ProfessionalService interface {
	Authenticate(email, password string) (*AuthResponse, error)
}

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo professionalRepo.ProfessionalRepository
}

// Authenticate verifies an active professional's password and issues a JWT.
func (s *DefaultProfessionalService) Authenticate(email, password string) (*AuthResponse, error) {
	professional, err := s.Repo.GetActiveByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		utils.GetLogger().Error("Authenticate: failed to fetch professional", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(professional.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	subject := fmt.Sprintf("%d", professional.ID)
	token, err := utils.GenerateToken(subject, professional.Email, "professional", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	session := utils.AuthSession{
		SubjectID: subject,
		Email:     professional.Email,
		Role:      "professional",
		CreatedAt: time.Now(),
		TokenHash: utils.HashToken(token),
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), subject, session); err != nil {
		utils.GetLogger().Warn("Authenticate: failed to save auth session", zap.Int64("professionalID", professional.ID), zap.Error(err))
	}

	return &AuthResponse{
		ID:    professional.ID,
		Name:  professional.Name,
		Email: professional.Email,
		Token: token,
	}, nil
}
