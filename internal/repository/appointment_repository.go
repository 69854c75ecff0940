package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
)

// AppointmentRepository defines the interface for cita database operations
type AppointmentRepository interface {
	List() ([]models.AppointmentListItem, error)
	FindByID(id int64) (*models.AppointmentDetail, error)
	Create(appt *entities.Appointment) (*entities.Appointment, error)
	Update(appt *entities.Appointment) (*entities.Appointment, error)
	Delete(id int64) error
}

type appointmentRepository struct {
	db *sql.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// List returns every appointment with patient and owner display names
// derived via join, newest first
func (r *appointmentRepository) List() ([]models.AppointmentListItem, error) {
	query := `
		SELECT
			c.id, c.fecha, c.motivo, c.estado, c.paciente_id,
			p.nombre,
			pr.nombre || ' ' || pr.apellido
		FROM citas c
		JOIN pacientes p ON c.paciente_id = p.id
		JOIN propietarios pr ON p.propietario_id = pr.id
		ORDER BY c.fecha DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list citas: %w", err)
	}
	defer rows.Close()

	items := make([]models.AppointmentListItem, 0)
	for rows.Next() {
		var item models.AppointmentListItem
		if err := rows.Scan(
			&item.ID,
			&item.Fecha,
			&item.Motivo,
			&item.Estado,
			&item.PacienteID,
			&item.PacienteNombre,
			&item.PropietarioNombre,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cita: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindByID returns one appointment with its patient's name
func (r *appointmentRepository) FindByID(id int64) (*models.AppointmentDetail, error) {
	query := `
		SELECT c.id, c.fecha, c.motivo, c.estado, c.paciente_id, p.nombre
		FROM citas c
		JOIN pacientes p ON c.paciente_id = p.id
		WHERE c.id = $1`

	var d models.AppointmentDetail
	err := r.db.QueryRow(query, id).Scan(
		&d.ID,
		&d.Fecha,
		&d.Motivo,
		&d.Estado,
		&d.PacienteID,
		&d.PacienteNombre,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: cita", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

const appointmentColumns = `id, fecha, motivo, estado, paciente_id, created_at, updated_at`

func scanAppointment(row *sql.Row) (*entities.Appointment, error) {
	var a entities.Appointment
	err := row.Scan(
		&a.ID,
		&a.Fecha,
		&a.Motivo,
		&a.Estado,
		&a.PacienteID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: cita", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new appointment. A paciente_id pointing nowhere surfaces
// as ErrReferenceMissing.
func (r *appointmentRepository) Create(appt *entities.Appointment) (*entities.Appointment, error) {
	query := `
		INSERT INTO citas (fecha, motivo, estado, paciente_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + appointmentColumns

	created, err := scanAppointment(r.db.QueryRow(query,
		appt.Fecha, appt.Motivo, appt.Estado, appt.PacienteID))
	if err != nil {
		return nil, apperrors.TranslateWrite(err)
	}
	return created, nil
}

// Update overwrites all mutable fields (full replace, not a patch)
func (r *appointmentRepository) Update(appt *entities.Appointment) (*entities.Appointment, error) {
	query := `
		UPDATE citas
		SET fecha = $2, motivo = $3, estado = $4, paciente_id = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + appointmentColumns

	updated, err := scanAppointment(r.db.QueryRow(query,
		appt.ID, appt.Fecha, appt.Motivo, appt.Estado, appt.PacienteID))
	if err != nil {
		return nil, apperrors.TranslateWrite(err)
	}
	return updated, nil
}

// Delete removes an appointment. Nothing references citas, so only a missing
// row can fail here.
func (r *appointmentRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM citas WHERE id = $1`, id)
	if err != nil {
		return apperrors.TranslateDelete(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: cita", apperrors.ErrNotFound)
	}
	return nil
}
