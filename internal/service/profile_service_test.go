package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/jwt"
	"github.com/YaderM/vetapp-web-completo/internal/models"
)

func TestProfileUpdate(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, jwt.NewJWTService("test-secret", time.Hour))
	svc := NewProfileService(repo)

	reg, err := auth.Register(&models.RegisterRequest{Nombre: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)

	updated, err := svc.Update(reg.ID, &models.UpdateProfileRequest{Nombre: "Ana María", Email: "anamaria@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Nombre)
	assert.Equal(t, "anamaria@x.com", updated.Email)

	got, err := svc.Get(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "anamaria@x.com", got.Email)
}

func TestProfileUpdateEmailTakenByOtherAccount(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, jwt.NewJWTService("test-secret", time.Hour))
	svc := NewProfileService(repo)

	_, err := auth.Register(&models.RegisterRequest{Nombre: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)
	other, err := auth.Register(&models.RegisterRequest{Nombre: "Luis", Email: "luis@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Update(other.ID, &models.UpdateProfileRequest{Nombre: "Luis", Email: "ana@x.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestProfileUpdateMissingFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewProfileService(repo)

	_, err := svc.Update(1, &models.UpdateProfileRequest{Nombre: "", Email: "a@x.com"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProfileUpdateKeepingOwnEmail(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, jwt.NewJWTService("test-secret", time.Hour))
	svc := NewProfileService(repo)

	reg, err := auth.Register(&models.RegisterRequest{Nombre: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)

	// Re-submitting the current email must not conflict with itself
	updated, err := svc.Update(reg.ID, &models.UpdateProfileRequest{Nombre: "Ana G.", Email: "ana@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana G.", updated.Nombre)
}
