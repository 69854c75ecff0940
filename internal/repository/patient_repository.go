package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
)

// PatientRepository defines the interface for paciente database operations.
// Reads come back pre-joined with the owner summary the views render.
type PatientRepository interface {
	List() ([]models.PatientListItem, error)
	FindByID(id int64) (*models.PatientDetail, error)
	Create(patient *entities.Patient) (*entities.Patient, error)
	Update(patient *entities.Patient) (*entities.Patient, error)
	Delete(id int64) error
}

type patientRepository struct {
	db *sql.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *sql.DB) PatientRepository {
	return &patientRepository{db: db}
}

// List returns every patient joined with its owner's display fields.
// LEFT JOIN keeps patients visible even if the owner row is gone.
func (r *patientRepository) List() ([]models.PatientListItem, error) {
	query := `
		SELECT
			p.id, p.nombre, p.especie, p.raza, p.edad,
			pr.id, pr.nombre, pr.apellido
		FROM pacientes p
		LEFT JOIN propietarios pr ON p.propietario_id = pr.id
		ORDER BY p.nombre`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pacientes: %w", err)
	}
	defer rows.Close()

	patients := make([]models.PatientListItem, 0)
	for rows.Next() {
		var item models.PatientListItem
		if err := rows.Scan(
			&item.ID,
			&item.Nombre,
			&item.Especie,
			&item.Raza,
			&item.Edad,
			&item.Propietario.ID,
			&item.Propietario.Nombre,
			&item.Propietario.Apellido,
		); err != nil {
			return nil, fmt.Errorf("failed to scan paciente: %w", err)
		}
		patients = append(patients, item)
	}
	return patients, rows.Err()
}

// FindByID returns one patient with medical history and its owner summary
func (r *patientRepository) FindByID(id int64) (*models.PatientDetail, error) {
	query := `
		SELECT
			p.id, p.nombre, p.especie, p.raza, p.edad, p.historial_medico, p.propietario_id,
			pr.id, pr.nombre, pr.apellido
		FROM pacientes p
		LEFT JOIN propietarios pr ON p.propietario_id = pr.id
		WHERE p.id = $1`

	var d models.PatientDetail
	err := r.db.QueryRow(query, id).Scan(
		&d.ID,
		&d.Nombre,
		&d.Especie,
		&d.Raza,
		&d.Edad,
		&d.HistorialMedico,
		&d.PropietarioID,
		&d.Propietario.ID,
		&d.Propietario.Nombre,
		&d.Propietario.Apellido,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: paciente", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

const patientColumns = `id, nombre, especie, raza, edad, historial_medico, propietario_id, created_at, updated_at`

func scanPatient(row *sql.Row) (*entities.Patient, error) {
	var p entities.Patient
	err := row.Scan(
		&p.ID,
		&p.Nombre,
		&p.Especie,
		&p.Raza,
		&p.Edad,
		&p.HistorialMedico,
		&p.PropietarioID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: paciente", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new patient. A propietario_id pointing nowhere surfaces
// as ErrReferenceMissing.
func (r *patientRepository) Create(patient *entities.Patient) (*entities.Patient, error) {
	query := `
		INSERT INTO pacientes (nombre, especie, raza, edad, historial_medico, propietario_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + patientColumns

	created, err := scanPatient(r.db.QueryRow(query,
		patient.Nombre, patient.Especie, patient.Raza, patient.Edad, patient.HistorialMedico, patient.PropietarioID))
	if err != nil {
		return nil, apperrors.TranslateWrite(err)
	}
	return created, nil
}

// Update overwrites all mutable fields (full replace, not a patch)
func (r *patientRepository) Update(patient *entities.Patient) (*entities.Patient, error) {
	query := `
		UPDATE pacientes
		SET nombre = $2, especie = $3, raza = $4, edad = $5, historial_medico = $6, propietario_id = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + patientColumns

	updated, err := scanPatient(r.db.QueryRow(query,
		patient.ID, patient.Nombre, patient.Especie, patient.Raza, patient.Edad, patient.HistorialMedico, patient.PropietarioID))
	if err != nil {
		return nil, apperrors.TranslateWrite(err)
	}
	return updated, nil
}

// Delete removes a patient. Appointments referencing the patient block the
// delete with ErrStillReferenced.
func (r *patientRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return apperrors.TranslateDelete(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: paciente", apperrors.ErrNotFound)
	}
	return nil
}
