package service

import (
	"context"
	"fmt"

	"ycliu87/Car-Garage/internal/api/models"
	"ycliu87/Car-Garage/internal/api/repository"
	"ycliu87/Car-Garage/internal/validator"

	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for registration, login and session
// resolution.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Register validates the form, rejects duplicate usernames and emails, then
// hashes the password and stores the user.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	if err := validator.GetValidator().Struct(req); err != nil {
		return fmt.Errorf("%w: %v", models.ErrConflict, err)
	}

	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: username %q already taken", models.ErrConflict, req.Username)
	}

	byEmail, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if byEmail != nil {
		return fmt.Errorf("%w: email %q already registered", models.ErrConflict, req.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:       req.Username,
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hashed),
		Birthday:       req.Birthday,
	}
	return s.userRepo.Create(ctx, user)
}

// Login checks the credentials and returns a signed session token on success.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if err := validator.GetValidator().Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAuthFailed, err)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.ErrAuthFailed
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return "", models.ErrAuthFailed
	}

	return s.tokens.Issue(user.Username)
}

// CurrentUser resolves the session token back to the stored user record,
// with the hashed password blanked.
func (s *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token outlived the record; in-memory users vanish on restart.
		return nil, models.ErrUnauthenticated
	}

	safe := user.WithoutPassword()
	return &safe, nil
}
