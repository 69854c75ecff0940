package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/cache"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/repository"
)

// PatientService defines the interface for paciente business logic
type PatientService interface {
	List() ([]models.PatientListItem, error)
	GetByID(id int64) (*models.PatientDetail, error)
	Create(req *models.PatientRequest) (*entities.Patient, error)
	Update(id int64, req *models.PatientRequest) (*entities.Patient, error)
	Delete(id int64) error
}

const patientListKey = "pacientes:list"

func patientKey(id int64) string {
	return fmt.Sprintf("pacientes:id:%d", id)
}

type patientService struct {
	repo     repository.PatientRepository
	cache    cache.Cache
	cacheTTL time.Duration
	ctx      context.Context
}

// NewPatientService creates a new patient service. cacheClient may be nil,
// which disables caching.
func NewPatientService(repo repository.PatientRepository, cacheClient cache.Cache, cacheTTL time.Duration) PatientService {
	return &patientService{
		repo:     repo,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		ctx:      context.Background(),
	}
}

func validatePatient(req *models.PatientRequest) error {
	if strings.TrimSpace(req.Nombre) == "" ||
		strings.TrimSpace(req.Especie) == "" ||
		req.PropietarioID == 0 {
		return apperrors.Validation("Faltan campos obligatorios: nombre, especie y propietarioId.")
	}
	return nil
}

// List returns every patient with its owner summary, served from cache when
// a fresh copy exists
func (s *patientService) List() ([]models.PatientListItem, error) {
	if s.cache != nil {
		var cached []models.PatientListItem
		if err := s.cache.GetJSON(s.ctx, patientListKey, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, patientListKey, items, s.cacheTTL)
	}
	return items, nil
}

// GetByID returns one patient, served from cache when a fresh copy exists
func (s *patientService) GetByID(id int64) (*models.PatientDetail, error) {
	if s.cache != nil {
		var cached models.PatientDetail
		if err := s.cache.GetJSON(s.ctx, patientKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	detail, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, patientKey(id), detail, s.cacheTTL)
	}
	return detail, nil
}

func (s *patientService) Create(req *models.PatientRequest) (*entities.Patient, error) {
	if err := validatePatient(req); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(&entities.Patient{
		Nombre:          strings.TrimSpace(req.Nombre),
		Especie:         strings.TrimSpace(req.Especie),
		Raza:            req.Raza,
		Edad:            req.Edad,
		HistorialMedico: req.HistorialMedico,
		PropietarioID:   req.PropietarioID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(created.ID)
	return created, nil
}

func (s *patientService) Update(id int64, req *models.PatientRequest) (*entities.Patient, error) {
	if err := validatePatient(req); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(&entities.Patient{
		ID:              id,
		Nombre:          strings.TrimSpace(req.Nombre),
		Especie:         strings.TrimSpace(req.Especie),
		Raza:            req.Raza,
		Edad:            req.Edad,
		HistorialMedico: req.HistorialMedico,
		PropietarioID:   req.PropietarioID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(id)
	return updated, nil
}

func (s *patientService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

// invalidate drops the cached list and the by-id entry after a write.
// Cache errors are ignored; the TTL bounds staleness anyway.
func (s *patientService) invalidate(id int64) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(s.ctx, patientListKey, patientKey(id))
}
