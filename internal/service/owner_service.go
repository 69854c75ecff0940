package service

import (
	"strings"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/repository"
)

// OwnerService defines the interface for propietario business logic
type OwnerService interface {
	List() ([]entities.Owner, error)
	GetByID(id int64) (*entities.Owner, error)
	Create(req *models.OwnerRequest) (*entities.Owner, error)
	Update(id int64, req *models.OwnerRequest) (*entities.Owner, error)
	Delete(id int64) error
}

type ownerService struct {
	repo repository.OwnerRepository
}

// NewOwnerService creates a new owner service
func NewOwnerService(repo repository.OwnerRepository) OwnerService {
	return &ownerService{repo: repo}
}

func validateOwner(req *models.OwnerRequest) error {
	if strings.TrimSpace(req.Nombre) == "" ||
		strings.TrimSpace(req.Apellido) == "" ||
		strings.TrimSpace(req.Telefono) == "" ||
		strings.TrimSpace(req.Email) == "" {
		return apperrors.Validation("Faltan campos obligatorios: nombre, apellido, teléfono y email.")
	}
	return nil
}

func (s *ownerService) List() ([]entities.Owner, error) {
	return s.repo.List()
}

func (s *ownerService) GetByID(id int64) (*entities.Owner, error) {
	return s.repo.FindByID(id)
}

func (s *ownerService) Create(req *models.OwnerRequest) (*entities.Owner, error) {
	if err := validateOwner(req); err != nil {
		return nil, err
	}
	return s.repo.Create(&entities.Owner{
		Nombre:    strings.TrimSpace(req.Nombre),
		Apellido:  strings.TrimSpace(req.Apellido),
		Telefono:  strings.TrimSpace(req.Telefono),
		Email:     strings.TrimSpace(req.Email),
		Direccion: req.Direccion,
	})
}

func (s *ownerService) Update(id int64, req *models.OwnerRequest) (*entities.Owner, error) {
	if err := validateOwner(req); err != nil {
		return nil, err
	}
	return s.repo.Update(&entities.Owner{
		ID:        id,
		Nombre:    strings.TrimSpace(req.Nombre),
		Apellido:  strings.TrimSpace(req.Apellido),
		Telefono:  strings.TrimSpace(req.Telefono),
		Email:     strings.TrimSpace(req.Email),
		Direccion: req.Direccion,
	})
}

func (s *ownerService) Delete(id int64) error {
	return s.repo.Delete(id)
}
