package service

import (
	"context"
	"errors"
	"fmt"

	"patient_registry/internal/model"
	"patient_registry/internal/repository"
	"patient_registry/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this ID already exists")
	ErrInvalidCredentials = errors.New("invalid ID or password")
)

// LoginResult is returned to the client after a successful login
type LoginResult struct {
	AccessToken string `json:"access_token"`
	ID          string `json:"id"`
	Role        string `json:"role"`
}

// AuthService provides registration, credential validation and token
// issuance
type AuthService interface {
	Register(ctx context.Context, req model.RegisterUserRequest) error
	ValidateCredentials(ctx context.Context, id, password string) (*model.User, error)
	Login(ctx context.Context, id, password string) (*LoginResult, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new account. The plaintext password is hashed before
// it reaches the repository and is never stored or logged.
func (s *authService) Register(ctx context.Context, req model.RegisterUserRequest) error {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:       req.ID,
		Password: hashedPassword,
		Role:     req.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user in repository: %w", err)
	}
	return nil
}

// ValidateCredentials looks the account up case-insensitively and checks
// the password against the stored hash. A missing account and a wrong
// password both yield (nil, nil), so callers cannot distinguish the two.
// The returned account has its hash cleared.
func (s *authService) ValidateCredentials(ctx context.Context, id, password string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding user by ID: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, nil // No match
	}

	return &model.User{ID: user.ID, Role: user.Role}, nil
}

// Login validates the credentials and issues a signed session token
func (s *authService) Login(ctx context.Context, id, password string) (*LoginResult, error) {
	user, err := s.ValidateCredentials(ctx, id, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{AccessToken: token, ID: user.ID, Role: user.Role}, nil
}
