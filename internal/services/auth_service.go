package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/brycehall/stache/internal/constants"
	"github.com/brycehall/stache/internal/models"
	"github.com/brycehall/stache/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUsername    = errors.New("username must be 3-32 letters, digits, or underscores")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserNotFound       = errors.New("user not found")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Username        string
	Password        string
	PasswordConfirm string
}

// Signup validates the input and creates a new user. The plaintext
// password never reaches storage; only the bcrypt hash is persisted.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < constants.MinUsernameLength ||
		len(username) > constants.MaxUsernameLength ||
		!usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if input.Password != input.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. An
// unknown username and a wrong password produce the same error so the
// login page cannot be used to enumerate accounts.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ChangePasswordInput holds the settings-page password change fields.
type ChangePasswordInput struct {
	Current    string
	New        string
	NewConfirm string
}

// ChangePassword verifies the current password and replaces the stored
// hash. The old password stops working the moment this returns.
func (s *AuthService) ChangePassword(userID uint64, input ChangePasswordInput) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Current)); err != nil {
		return ErrInvalidCredentials
	}
	if len(input.New) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if input.New != input.NewConfirm {
		return ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.New), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// DeleteAccount removes the user and everything they own.
func (s *AuthService) DeleteAccount(userID uint64) error {
	if err := s.userRepo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// Stats returns the aggregate counts shown on the profile page.
func (s *AuthService) Stats(userID uint64) (*repository.UserStats, error) {
	stats, err := s.userRepo.Stats(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account stats: %w", err)
	}
	return stats, nil
}
