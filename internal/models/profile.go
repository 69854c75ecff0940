package models

// ProfileResponse is the authenticated user's own profile
type ProfileResponse struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Rol     string `json:"rol,omitempty"`
	Message string `json:"message,omitempty"`
}

// UpdateProfileRequest represents the PUT /api/perfil/me body. The target
// account always comes from the authenticated identity, never the client.
type UpdateProfileRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}
