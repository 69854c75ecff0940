package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
)

// fakeOwnerRepo is an in-memory OwnerRepository double
type fakeOwnerRepo struct {
	nextID       int64
	owners       map[int64]*entities.Owner
	withPatients map[int64]bool // owner ids that patients reference
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{
		nextID:       1,
		owners:       make(map[int64]*entities.Owner),
		withPatients: make(map[int64]bool),
	}
}

func (r *fakeOwnerRepo) List() ([]entities.Owner, error) {
	out := make([]entities.Owner, 0, len(r.owners))
	for _, o := range r.owners {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOwnerRepo) FindByID(id int64) (*entities.Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return nil, fmt.Errorf("%w: propietario", apperrors.ErrNotFound)
	}
	return o, nil
}

func (r *fakeOwnerRepo) Create(owner *entities.Owner) (*entities.Owner, error) {
	for _, o := range r.owners {
		if o.Email == owner.Email {
			return nil, fmt.Errorf("%w: propietarios_email_key", apperrors.ErrDuplicate)
		}
	}
	o := *owner
	o.ID = r.nextID
	r.nextID++
	r.owners[o.ID] = &o
	return &o, nil
}

func (r *fakeOwnerRepo) Update(owner *entities.Owner) (*entities.Owner, error) {
	if _, ok := r.owners[owner.ID]; !ok {
		return nil, fmt.Errorf("%w: propietario", apperrors.ErrNotFound)
	}
	for _, o := range r.owners {
		if o.Email == owner.Email && o.ID != owner.ID {
			return nil, fmt.Errorf("%w: propietarios_email_key", apperrors.ErrDuplicate)
		}
	}
	o := *owner
	r.owners[o.ID] = &o
	return &o, nil
}

func (r *fakeOwnerRepo) Delete(id int64) error {
	if _, ok := r.owners[id]; !ok {
		return fmt.Errorf("%w: propietario", apperrors.ErrNotFound)
	}
	if r.withPatients[id] {
		return fmt.Errorf("%w: pacientes_propietario_id_fkey", apperrors.ErrStillReferenced)
	}
	delete(r.owners, id)
	return nil
}

func validOwnerRequest() *models.OwnerRequest {
	direccion := "Calle Mayor 1"
	return &models.OwnerRequest{
		Nombre:    "Ana",
		Apellido:  "García",
		Telefono:  "600123456",
		Email:     "ana@x.com",
		Direccion: &direccion,
	}
}

func TestOwnerCreateMissingTelefono(t *testing.T) {
	svc := NewOwnerService(newFakeOwnerRepo())

	req := validOwnerRequest()
	req.Telefono = ""

	_, err := svc.Create(req)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "obligatorios")
}

func TestOwnerCreateGetRoundTrip(t *testing.T) {
	svc := NewOwnerService(newFakeOwnerRepo())

	req := validOwnerRequest()
	created, err := svc.Create(req)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)

	// Fields round-trip modulo the server-assigned id
	assert.Equal(t, req.Nombre, got.Nombre)
	assert.Equal(t, req.Apellido, got.Apellido)
	assert.Equal(t, req.Telefono, got.Telefono)
	assert.Equal(t, req.Email, got.Email)
	assert.Equal(t, req.Direccion, got.Direccion)
}

func TestOwnerCreateDuplicateEmail(t *testing.T) {
	repo := newFakeOwnerRepo()
	svc := NewOwnerService(repo)

	_, err := svc.Create(validOwnerRequest())
	require.NoError(t, err)

	_, err = svc.Create(validOwnerRequest())
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, repo.owners, 1)
}

func TestOwnerDeleteBlockedByPatients(t *testing.T) {
	repo := newFakeOwnerRepo()
	svc := NewOwnerService(repo)

	created, err := svc.Create(validOwnerRequest())
	require.NoError(t, err)
	repo.withPatients[created.ID] = true

	err = svc.Delete(created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStillReferenced)

	_, err = svc.GetByID(created.ID)
	assert.NoError(t, err, "owner row must remain after a blocked delete")
}

func TestOwnerUpdateNotFound(t *testing.T) {
	svc := NewOwnerService(newFakeOwnerRepo())

	_, err := svc.Update(99, validOwnerRequest())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
