package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YaderM/vetapp-web-completo/internal/entities"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/service"
)

type OwnerController struct {
	ownerService service.OwnerService
}

func NewOwnerController(ownerService service.OwnerService) *OwnerController {
	return &OwnerController{
		ownerService: ownerService,
	}
}

var ownerMessages = errorMessages{
	NotFound:        "Propietario no encontrado.",
	Duplicate:       "Conflicto: El email proporcionado ya está registrado.",
	StillReferenced: "Conflicto: No se puede eliminar el propietario porque tiene pacientes asociados.",
}

func toOwnerResponse(o *entities.Owner, message string) models.OwnerResponse {
	return models.OwnerResponse{
		ID:        o.ID,
		Nombre:    o.Nombre,
		Apellido:  o.Apellido,
		Telefono:  o.Telefono,
		Email:     o.Email,
		Direccion: o.Direccion,
		Message:   message,
	}
}

// List handles GET /api/propietarios
func (oc *OwnerController) List(c *gin.Context) {
	owners, err := oc.ownerService.List()
	if err != nil {
		respondError(c, err, ownerMessages)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// GetByID handles GET /api/propietarios/:id
func (oc *OwnerController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	owner, err := oc.ownerService.GetByID(id)
	if err != nil {
		respondError(c, err, ownerMessages)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// Create handles POST /api/propietarios
func (oc *OwnerController) Create(c *gin.Context) {
	var req models.OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	owner, err := oc.ownerService.Create(&req)
	if err != nil {
		respondError(c, err, ownerMessages)
		return
	}
	c.JSON(http.StatusCreated, toOwnerResponse(owner, "Propietario creado exitosamente."))
}

// Update handles PUT /api/propietarios/:id
func (oc *OwnerController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	owner, err := oc.ownerService.Update(id, &req)
	if err != nil {
		respondError(c, err, ownerMessages)
		return
	}
	c.JSON(http.StatusOK, toOwnerResponse(owner, "Propietario actualizado correctamente."))
}

// Delete handles DELETE /api/propietarios/:id
func (oc *OwnerController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := oc.ownerService.Delete(id); err != nil {
		respondError(c, err, ownerMessages)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Propietario con ID %d eliminado correctamente.", id),
	})
}
