package models

// RegisterRequest represents the request body for user registration.
// Required-field validation happens in the service so the API can answer
// with the Spanish messages the frontend surfaces directly.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
