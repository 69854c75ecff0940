package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/service"
)

type AppointmentController struct {
	appointmentService service.AppointmentService
}

func NewAppointmentController(appointmentService service.AppointmentService) *AppointmentController {
	return &AppointmentController{
		appointmentService: appointmentService,
	}
}

var appointmentMessages = errorMessages{
	NotFound:         "Cita no encontrada.",
	ReferenceMissing: "Error: El pacienteId proporcionado no existe.",
}

func toAppointmentResponse(a *entities.Appointment, message string) models.AppointmentResponse {
	return models.AppointmentResponse{
		ID:         a.ID,
		Fecha:      a.Fecha,
		Motivo:     a.Motivo,
		Estado:     a.Estado,
		PacienteID: a.PacienteID,
		Message:    message,
	}
}

// List handles GET /api/citas
func (cc *AppointmentController) List(c *gin.Context) {
	appointments, err := cc.appointmentService.List()
	if err != nil {
		respondError(c, err, appointmentMessages)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetByID handles GET /api/citas/:id
func (cc *AppointmentController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	appointment, err := cc.appointmentService.GetByID(id)
	if err != nil {
		respondError(c, err, appointmentMessages)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// Create handles POST /api/citas
func (cc *AppointmentController) Create(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	appointment, err := cc.appointmentService.Create(&req)
	if err != nil {
		respondError(c, err, appointmentMessages)
		return
	}
	c.JSON(http.StatusCreated, toAppointmentResponse(appointment, ""))
}

// Update handles PUT /api/citas/:id
func (cc *AppointmentController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	appointment, err := cc.appointmentService.Update(id, &req)
	if err != nil {
		respondError(c, err, appointmentMessages)
		return
	}
	c.JSON(http.StatusOK, toAppointmentResponse(appointment, "Cita actualizada correctamente."))
}

// Delete handles DELETE /api/citas/:id
func (cc *AppointmentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := cc.appointmentService.Delete(id); err != nil {
		respondError(c, err, appointmentMessages)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Cita con ID %d eliminada correctamente.", id),
	})
}
