package entities

import "time"

// Appointment statuses. The estado column carries an informal lifecycle with
// no enforced transitions.
const (
	CitaPendiente  = "pendiente"
	CitaConfirmada = "confirmada"
	CitaCancelada  = "cancelada"
)

// Appointment represents a scheduled visit in the citas table, referencing
// exactly one patient.
type Appointment struct {
	ID         int64     `json:"id"`
	Fecha      time.Time `json:"fecha"`
	Motivo     string    `json:"motivo"`
	Estado     string    `json:"estado"`
	PacienteID int64     `json:"pacienteId"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
