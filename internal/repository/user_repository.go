package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
)

// UserRepository defines the interface for usuario database operations
type UserRepository interface {
	Create(nombre, email, passwordHash string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id int64) (*entities.User, error)
	UpdateProfile(id int64, nombre, email string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, nombre, email, password_hash, rol, created_at, updated_at`

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Nombre,
		&user.Email,
		&user.PasswordHash,
		&user.Rol,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: usuario", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. A duplicate email surfaces as ErrDuplicate.
func (r *userRepository) Create(nombre, email, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO usuarios (nombre, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(query, nombre, email, passwordHash))
	if err != nil {
		return nil, apperrors.TranslateWrite(err)
	}
	return user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1`
	return scanUser(r.db.QueryRow(query, email))
}

// FindByID finds a user by id. The auth middleware uses this as the token
// liveness check: a deleted user invalidates every outstanding token.
func (r *userRepository) FindByID(id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`
	return scanUser(r.db.QueryRow(query, id))
}

// UpdateProfile overwrites nombre and email for the given account
func (r *userRepository) UpdateProfile(id int64, nombre, email string) (*entities.User, error) {
	query := `
		UPDATE usuarios
		SET nombre = $2, email = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(query, id, nombre, email))
	if err != nil {
		return nil, apperrors.TranslateWrite(err)
	}
	return user, nil
}
