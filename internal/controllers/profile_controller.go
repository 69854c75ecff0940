package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YaderM/vetapp-web-completo/internal/middleware"
	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/service"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

var profileMessages = errorMessages{
	NotFound:  "Usuario no encontrado.",
	Duplicate: "Conflicto: El email ya está en uso por otra cuenta.",
}

// GetMe handles GET /api/perfil/me. The account always comes from the
// authenticated identity, never from the request.
func (pc *ProfileController) GetMe(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No autorizado."})
		return
	}

	user, err := pc.profileService.Get(identity.ID)
	if err != nil {
		respondError(c, err, profileMessages)
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		ID:     user.ID,
		Nombre: user.Nombre,
		Email:  user.Email,
		Rol:    user.Rol,
	})
}

// UpdateMe handles PUT /api/perfil/me
func (pc *ProfileController) UpdateMe(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No autorizado."})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	user, err := pc.profileService.Update(identity.ID, &req)
	if err != nil {
		respondError(c, err, profileMessages)
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		ID:      user.ID,
		Nombre:  user.Nombre,
		Email:   user.Email,
		Rol:     user.Rol,
		Message: "Perfil actualizado correctamente.",
	})
}
