package models

// OwnerRequest represents the request body for creating or replacing a
// propietario. PUT uses full-replace semantics, so the same shape serves both.
type OwnerRequest struct {
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Telefono  string  `json:"telefono"`
	Email     string  `json:"email"`
	Direccion *string `json:"direccion"`
}

// OwnerResponse mirrors what the frontend owner forms expect back
type OwnerResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Telefono  string  `json:"telefono"`
	Email     string  `json:"email"`
	Direccion *string `json:"direccion,omitempty"`
	Message   string  `json:"message,omitempty"`
}
