package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/jwt"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(req *models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account and logs it in.
// Registration writes only the usuarios row; linking an owner record is a
// separate, explicit step through the propietarios API.
func (s *authService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	email := strings.TrimSpace(req.Email)
	if nombre == "" || email == "" || req.Password == "" {
		return nil, apperrors.Validation("Por favor, introduce todos los campos: nombre, email y contraseña.")
	}

	// Hash password (cost 10, same work factor the stored hashes use)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index on email is the real uniqueness check; a racing
	// duplicate insert still comes back as ErrDuplicate.
	user, err := s.userRepo.Create(nombre, email, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	// Generate JWT token for automatic login after registration
	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		ID:      user.ID,
		Nombre:  user.Nombre,
		Email:   user.Email,
		Rol:     user.Rol,
		Token:   token,
		Message: "Registro exitoso.",
	}, nil
}

// Login authenticates a user and returns its identity with a fresh token.
// Unknown email and wrong password produce the same error so the response
// never reveals which part was wrong.
func (s *authService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.Validation("Por favor, introduce email y contraseña.")
	}

	user, err := s.userRepo.FindByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		ID:      user.ID,
		Nombre:  user.Nombre,
		Email:   user.Email,
		Rol:     user.Rol,
		Token:   token,
		Message: "Login exitoso.",
	}, nil
}
