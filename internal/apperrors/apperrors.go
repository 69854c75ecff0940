package apperrors

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Sentinel errors shared by services and repositories. Controllers translate
// them to HTTP status codes; repositories wrap driver errors into them.
var (
	// ErrValidation marks missing or malformed input (400).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so the response never reveals which one failed (401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound marks a lookup or write that matched no row (404).
	ErrNotFound = errors.New("not found")

	// ErrDuplicate marks a unique-constraint violation, e.g. a registered
	// email (409).
	ErrDuplicate = errors.New("duplicate value")

	// ErrReferenceMissing marks an insert/update whose foreign key points at
	// a row that does not exist (404).
	ErrReferenceMissing = errors.New("referenced row does not exist")

	// ErrStillReferenced marks a delete blocked because other rows still
	// point at the target (409).
	ErrStillReferenced = errors.New("row is still referenced")
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

// Validation builds an ErrValidation whose Error() text is the user-facing
// message, so controllers can surface it directly in the JSON response.
func Validation(msg string) error {
	return &validationError{msg: msg}
}

// Postgres error codes relevant to the CRUD surface.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TranslateWrite maps a Postgres error from an INSERT or UPDATE to the
// taxonomy: unique violations become ErrDuplicate, foreign-key violations
// mean the referenced parent row is missing.
func TranslateWrite(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferenceMissing, pqErr.Constraint)
		}
	}
	return err
}

// TranslateDelete maps a Postgres error from a DELETE: here a foreign-key
// violation means dependent rows still reference the target.
func TranslateDelete(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", ErrStillReferenced, pqErr.Constraint)
	}
	return err
}
