package entities

import "time"

// Patient represents an animal in the pacientes table. Every patient belongs
// to exactly one owner.
type Patient struct {
	ID              int64     `json:"id"`
	Nombre          string    `json:"nombre"`
	Especie         string    `json:"especie"`
	Raza            *string   `json:"raza,omitempty"`
	Edad            *int      `json:"edad,omitempty"`
	HistorialMedico *string   `json:"historialMedico,omitempty"`
	PropietarioID   int64     `json:"propietarioId"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
