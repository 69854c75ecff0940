package service

import (
	"strings"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/repository"
)

// ProfileService operates exclusively on the identity resolved by the auth
// middleware; it never accepts a client-supplied account id.
type ProfileService interface {
	Get(userID int64) (*entities.User, error)
	Update(userID int64, req *models.UpdateProfileRequest) (*entities.User, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

func (s *profileService) Get(userID int64) (*entities.User, error) {
	return s.userRepo.FindByID(userID)
}

// Update overwrites nombre and email. An email already held by another
// account surfaces as ErrDuplicate.
func (s *profileService) Update(userID int64, req *models.UpdateProfileRequest) (*entities.User, error) {
	nombre := strings.TrimSpace(req.Nombre)
	email := strings.TrimSpace(req.Email)
	if nombre == "" || email == "" {
		return nil, apperrors.Validation("Nombre y email son obligatorios.")
	}
	return s.userRepo.UpdateProfile(userID, nombre, email)
}
