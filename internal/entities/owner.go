package entities

import "time"

// Owner represents a clinic client in the propietarios table
type Owner struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	Direccion *string   `json:"direccion,omitempty"` // Pointer allows nil (optional field)
	UsuarioID *int64    `json:"usuario_id,omitempty"` // Set when the owner has a self-service account
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
