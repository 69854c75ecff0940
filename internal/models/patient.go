package models

// PatientRequest represents the request body for creating or replacing a
// paciente.
type PatientRequest struct {
	Nombre          string  `json:"nombre"`
	Especie         string  `json:"especie"`
	Raza            *string `json:"raza"`
	Edad            *int    `json:"edad"`
	HistorialMedico *string `json:"historialMedico"`
	PropietarioID   int64   `json:"propietarioId"`
}

// PatientOwner is the nested owner summary the patient views render
type PatientOwner struct {
	ID       *int64  `json:"id"`
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
}

// PatientListItem is one row of GET /api/pacientes, joined with its owner
type PatientListItem struct {
	ID          int64        `json:"id"`
	Nombre      string       `json:"nombre"`
	Especie     string       `json:"especie"`
	Raza        *string      `json:"raza"`
	Edad        *int         `json:"edad"`
	Propietario PatientOwner `json:"propietario"`
}

// PatientDetail is the GET /api/pacientes/:id response, including the
// medical history and the raw propietarioId the edit form needs
type PatientDetail struct {
	ID              int64        `json:"id"`
	Nombre          string       `json:"nombre"`
	Especie         string       `json:"especie"`
	Raza            *string      `json:"raza"`
	Edad            *int         `json:"edad"`
	HistorialMedico *string      `json:"historialMedico"`
	PropietarioID   int64        `json:"propietarioId"`
	Propietario     PatientOwner `json:"propietario"`
}

// PatientResponse is returned by POST and PUT (no join, mirrors the input)
type PatientResponse struct {
	ID              int64   `json:"id"`
	Nombre          string  `json:"nombre"`
	Especie         string  `json:"especie"`
	Raza            *string `json:"raza"`
	Edad            *int    `json:"edad"`
	HistorialMedico *string `json:"historialMedico"`
	PropietarioID   int64   `json:"propietarioId"`
	Message         string  `json:"message,omitempty"`
}
