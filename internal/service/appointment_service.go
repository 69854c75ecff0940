package service

import (
	"context"
	"strings"
	"time"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/cache"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/repository"
)

// AppointmentService defines the interface for cita business logic
type AppointmentService interface {
	List() ([]models.AppointmentListItem, error)
	GetByID(id int64) (*models.AppointmentDetail, error)
	Create(req *models.AppointmentRequest) (*entities.Appointment, error)
	Update(id int64, req *models.AppointmentRequest) (*entities.Appointment, error)
	Delete(id int64) error
}

const appointmentListKey = "citas:list"

type appointmentService struct {
	repo     repository.AppointmentRepository
	cache    cache.Cache
	cacheTTL time.Duration
	ctx      context.Context
}

// NewAppointmentService creates a new appointment service. cacheClient may
// be nil, which disables caching.
func NewAppointmentService(repo repository.AppointmentRepository, cacheClient cache.Cache, cacheTTL time.Duration) AppointmentService {
	return &appointmentService{
		repo:     repo,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		ctx:      context.Background(),
	}
}

func validateAppointment(req *models.AppointmentRequest) error {
	if req.Fecha == nil || strings.TrimSpace(req.Motivo) == "" || req.PacienteID == 0 {
		return apperrors.Validation("Faltan campos obligatorios: fecha, motivo y pacienteId.")
	}
	return nil
}

// List returns every appointment joined with display names, served from
// cache when a fresh copy exists
func (s *appointmentService) List() ([]models.AppointmentListItem, error) {
	if s.cache != nil {
		var cached []models.AppointmentListItem
		if err := s.cache.GetJSON(s.ctx, appointmentListKey, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, appointmentListKey, items, s.cacheTTL)
	}
	return items, nil
}

func (s *appointmentService) GetByID(id int64) (*models.AppointmentDetail, error) {
	return s.repo.FindByID(id)
}

func (s *appointmentService) Create(req *models.AppointmentRequest) (*entities.Appointment, error) {
	if err := validateAppointment(req); err != nil {
		return nil, err
	}

	estado := strings.TrimSpace(req.Estado)
	if estado == "" {
		estado = entities.CitaPendiente
	}

	created, err := s.repo.Create(&entities.Appointment{
		Fecha:      req.Fecha.UTC(),
		Motivo:     strings.TrimSpace(req.Motivo),
		Estado:     estado,
		PacienteID: req.PacienteID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return created, nil
}

func (s *appointmentService) Update(id int64, req *models.AppointmentRequest) (*entities.Appointment, error) {
	if err := validateAppointment(req); err != nil {
		return nil, err
	}

	estado := strings.TrimSpace(req.Estado)
	if estado == "" {
		estado = entities.CitaPendiente
	}

	updated, err := s.repo.Update(&entities.Appointment{
		ID:         id,
		Fecha:      req.Fecha.UTC(),
		Motivo:     strings.TrimSpace(req.Motivo),
		Estado:     estado,
		PacienteID: req.PacienteID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return updated, nil
}

func (s *appointmentService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *appointmentService) invalidate() {
	if s.cache == nil {
		return
	}
	s.cache.Delete(s.ctx, appointmentListKey)
}
