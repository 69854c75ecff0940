package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
)

// OwnerRepository defines the interface for propietario database operations
type OwnerRepository interface {
	List() ([]entities.Owner, error)
	FindByID(id int64) (*entities.Owner, error)
	Create(owner *entities.Owner) (*entities.Owner, error)
	Update(owner *entities.Owner) (*entities.Owner, error)
	Delete(id int64) error
}

type ownerRepository struct {
	db *sql.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *sql.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

const ownerColumns = `id, nombre, apellido, telefono, email, direccion, usuario_id, created_at, updated_at`

func scanOwner(row *sql.Row) (*entities.Owner, error) {
	var o entities.Owner
	err := row.Scan(
		&o.ID,
		&o.Nombre,
		&o.Apellido,
		&o.Telefono,
		&o.Email,
		&o.Direccion,
		&o.UsuarioID,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: propietario", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns every owner, sorted the way the directory view displays them
func (r *ownerRepository) List() ([]entities.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM propietarios ORDER BY apellido, nombre`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list propietarios: %w", err)
	}
	defer rows.Close()

	owners := make([]entities.Owner, 0)
	for rows.Next() {
		var o entities.Owner
		if err := rows.Scan(
			&o.ID,
			&o.Nombre,
			&o.Apellido,
			&o.Telefono,
			&o.Email,
			&o.Direccion,
			&o.UsuarioID,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan propietario: %w", err)
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

// FindByID finds an owner by id
func (r *ownerRepository) FindByID(id int64) (*entities.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM propietarios WHERE id = $1`
	return scanOwner(r.db.QueryRow(query, id))
}

// Create inserts a new owner. A duplicate email surfaces as ErrDuplicate.
func (r *ownerRepository) Create(owner *entities.Owner) (*entities.Owner, error) {
	query := `
		INSERT INTO propietarios (nombre, apellido, telefono, email, direccion, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + ownerColumns

	created, err := scanOwner(r.db.QueryRow(query,
		owner.Nombre, owner.Apellido, owner.Telefono, owner.Email, owner.Direccion, owner.UsuarioID))
	if err != nil {
		return nil, apperrors.TranslateWrite(err)
	}
	return created, nil
}

// Update overwrites all mutable fields (full replace, not a patch)
func (r *ownerRepository) Update(owner *entities.Owner) (*entities.Owner, error) {
	query := `
		UPDATE propietarios
		SET nombre = $2, apellido = $3, telefono = $4, email = $5, direccion = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + ownerColumns

	updated, err := scanOwner(r.db.QueryRow(query,
		owner.ID, owner.Nombre, owner.Apellido, owner.Telefono, owner.Email, owner.Direccion))
	if err != nil {
		return nil, apperrors.TranslateWrite(err)
	}
	return updated, nil
}

// Delete removes an owner. Patients referencing the owner block the delete
// with ErrStillReferenced.
func (r *ownerRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM propietarios WHERE id = $1`, id)
	if err != nil {
		return apperrors.TranslateDelete(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: propietario", apperrors.ErrNotFound)
	}
	return nil
}
