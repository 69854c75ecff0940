package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/service"
)

type PatientController struct {
	patientService service.PatientService
}

func NewPatientController(patientService service.PatientService) *PatientController {
	return &PatientController{
		patientService: patientService,
	}
}

var patientMessages = errorMessages{
	NotFound:         "Paciente no encontrado.",
	ReferenceMissing: "Error: El propietarioId proporcionado no existe.",
	StillReferenced:  "Conflicto: No se puede eliminar el paciente porque tiene citas asociadas.",
}

func toPatientResponse(p *entities.Patient, message string) models.PatientResponse {
	return models.PatientResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Especie:         p.Especie,
		Raza:            p.Raza,
		Edad:            p.Edad,
		HistorialMedico: p.HistorialMedico,
		PropietarioID:   p.PropietarioID,
		Message:         message,
	}
}

// List handles GET /api/pacientes
func (pc *PatientController) List(c *gin.Context) {
	patients, err := pc.patientService.List()
	if err != nil {
		respondError(c, err, patientMessages)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetByID handles GET /api/pacientes/:id
func (pc *PatientController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	patient, err := pc.patientService.GetByID(id)
	if err != nil {
		respondError(c, err, patientMessages)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// Create handles POST /api/pacientes
func (pc *PatientController) Create(c *gin.Context) {
	var req models.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	patient, err := pc.patientService.Create(&req)
	if err != nil {
		respondError(c, err, patientMessages)
		return
	}
	c.JSON(http.StatusCreated, toPatientResponse(patient, ""))
}

// Update handles PUT /api/pacientes/:id
func (pc *PatientController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	patient, err := pc.patientService.Update(id, &req)
	if err != nil {
		respondError(c, err, patientMessages)
		return
	}
	c.JSON(http.StatusOK, toPatientResponse(patient, "Paciente actualizado correctamente."))
}

// Delete handles DELETE /api/pacientes/:id
func (pc *PatientController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := pc.patientService.Delete(id); err != nil {
		respondError(c, err, patientMessages)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Paciente con ID %d eliminado correctamente.", id),
	})
}
