package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/pablotzeliks/todolist-api/internal/models"
	"github.com/pablotzeliks/todolist-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrNoCredentials      = errors.New("no authentication credentials supplied")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService verifies Basic Auth credentials against stored password hashes.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Authenticate parses an Authorization header holding a Basic Auth credential
// pair and returns the matching user. Malformed headers fail the same way as
// wrong credentials; only storage failures surface as wrapped errors.
func (s *AuthService) Authenticate(authorization string) (*models.User, error) {
	if authorization == "" {
		return nil, ErrNoCredentials
	}

	if !strings.HasPrefix(authorization, "Basic") {
		return nil, ErrInvalidCredentials
	}

	encoded := strings.TrimSpace(strings.TrimPrefix(authorization, "Basic"))
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
