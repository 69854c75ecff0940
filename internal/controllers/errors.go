package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/YaderM/vetapp-web-completo/internal/apperrors"
)

// errorMessages carries the resource-specific Spanish messages a controller
// surfaces for each failure class. Empty fields fall back to generic text.
type errorMessages struct {
	NotFound         string
	Duplicate        string
	ReferenceMissing string
	StillReferenced  string
}

// respondError maps a service error to one JSON {message} response. Every
// handler funnels its failures through here; nothing propagates past it.
func respondError(c *gin.Context, err error, msgs errorMessages) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas."})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": orDefault(msgs.NotFound, "Recurso no encontrado.")})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"message": orDefault(msgs.Duplicate, "Conflicto: el valor ya está registrado.")})
	case errors.Is(err, apperrors.ErrReferenceMissing):
		c.JSON(http.StatusNotFound, gin.H{"message": orDefault(msgs.ReferenceMissing, "Error: la referencia proporcionada no existe.")})
	case errors.Is(err, apperrors.ErrStillReferenced):
		c.JSON(http.StatusConflict, gin.H{"message": orDefault(msgs.StillReferenced, "Conflicto: el registro tiene datos asociados.")})
	default:
		requestID, _ := c.Get("request_id")
		log.Printf("internal error request_id=%v path=%s: %v", requestID, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error interno del servidor."})
	}
}

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

// parseIDParam reads the :id route parameter as an int64
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido."})
		return 0, false
	}
	return id, true
}
