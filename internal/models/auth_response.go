package models

// AuthResponse represents the response after a successful register or login
type AuthResponse struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Rol     string `json:"rol,omitempty"`
	Token   string `json:"token"` // JWT bearer token
	Message string `json:"message"`
}
