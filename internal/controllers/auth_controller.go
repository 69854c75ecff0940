package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YaderM/vetapp-web-completo/internal/models"
	"github.com/YaderM/vetapp-web-completo/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

var authMessages = errorMessages{
	Duplicate: "El usuario con ese email ya existe.",
}

// Register handles POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		respondError(c, err, authMessages)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido."})
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		respondError(c, err, authMessages)
		return
	}

	c.JSON(http.StatusOK, response)
}
