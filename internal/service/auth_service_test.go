package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/jwt"
	"github.com/YaderM/vetapp-web-completo/internal/models"
)

// fakeUserRepo is an in-memory UserRepository double
type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*entities.User)}
}

func (r *fakeUserRepo) Create(nombre, email, passwordHash string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return nil, fmt.Errorf("%w: usuarios_email_key", apperrors.ErrDuplicate)
		}
	}
	u := &entities.User{
		ID:           r.nextID,
		Nombre:       nombre,
		Email:        email,
		PasswordHash: passwordHash,
		Rol:          "cliente",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	r.nextID++
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: usuario", apperrors.ErrNotFound)
}

func (r *fakeUserRepo) FindByID(id int64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: usuario", apperrors.ErrNotFound)
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateProfile(id int64, nombre, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != id {
			return nil, fmt.Errorf("%w: usuarios_email_key", apperrors.ErrDuplicate)
		}
	}
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: usuario", apperrors.ErrNotFound)
	}
	u.Nombre = nombre
	u.Email = email
	return u, nil
}

func newAuthServiceForTest() (AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, jwt.NewJWTService("test-secret", time.Hour)), repo
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, repo := newAuthServiceForTest()

	resp, err := svc.Register(&models.RegisterRequest{
		Nombre:   "Ana",
		Email:    "ana@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ana", resp.Nombre)
	assert.Equal(t, "ana@x.com", resp.Email)

	stored, err := repo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, stored.ID)
	// The stored hash must verify the original password and never equal it
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegisterMissingFields(t *testing.T) {
	svc, repo := newAuthServiceForTest()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing nombre", models.RegisterRequest{Email: "a@x.com", Password: "pw"}},
		{"missing email", models.RegisterRequest{Nombre: "Ana", Password: "pw"}},
		{"missing password", models.RegisterRequest{Nombre: "Ana", Email: "a@x.com"}},
		{"blank nombre", models.RegisterRequest{Nombre: "  ", Email: "a@x.com", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(&tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	assert.Empty(t, repo.users, "no row may be inserted for invalid input")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newAuthServiceForTest()

	_, err := svc.Register(&models.RegisterRequest{Nombre: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(&models.RegisterRequest{Nombre: "Otra", Email: "ana@x.com", Password: "otherpw"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Len(t, repo.users, 1, "duplicate registration must not insert a row")
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	reg, err := svc.Register(&models.RegisterRequest{Nombre: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)

	resp, err := svc.Login(&models.LoginRequest{Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginDoesNotRevealWhichPartFailed(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(&models.RegisterRequest{Nombre: "Ana", Email: "ana@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(&models.LoginRequest{Email: "ana@x.com", Password: "nope"})
	_, unknownEmail := svc.Login(&models.LoginRequest{Email: "nadie@x.com", Password: "secret123"})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	// Identical error values: the caller cannot tell which part was wrong
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
