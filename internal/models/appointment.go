package models

import "time"

// AppointmentRequest represents the request body for creating or replacing a
// cita. Estado is optional and defaults to "pendiente".
type AppointmentRequest struct {
	Fecha      *time.Time `json:"fecha"`
	Motivo     string     `json:"motivo"`
	Estado     string     `json:"estado"`
	PacienteID int64      `json:"pacienteId"`
}

// AppointmentListItem is one row of GET /api/citas with the display names
// derived via join, never stored redundantly
type AppointmentListItem struct {
	ID                int64     `json:"id"`
	Fecha             time.Time `json:"fecha"`
	Motivo            string    `json:"motivo"`
	Estado            string    `json:"estado"`
	PacienteID        int64     `json:"pacienteId"`
	PacienteNombre    string    `json:"pacienteNombre"`
	PropietarioNombre string    `json:"propietarioNombre"`
}

// AppointmentDetail is the GET /api/citas/:id response
type AppointmentDetail struct {
	ID             int64     `json:"id"`
	Fecha          time.Time `json:"fecha"`
	Motivo         string    `json:"motivo"`
	Estado         string    `json:"estado"`
	PacienteID     int64     `json:"pacienteId"`
	PacienteNombre string    `json:"pacienteNombre"`
}

// AppointmentResponse is returned by POST and PUT
type AppointmentResponse struct {
	ID         int64     `json:"id"`
	Fecha      time.Time `json:"fecha"`
	Motivo     string    `json:"motivo"`
	Estado     string    `json:"estado"`
	PacienteID int64     `json:"pacienteId"`
	Message    string    `json:"message,omitempty"`
}
