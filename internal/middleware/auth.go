package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/YaderM/vetapp-web-completo/internal/jwt"
	"github.com/YaderM/vetapp-web-completo/internal/repository"
)

const identityKey = "identity"

// Identity is the immutable authenticated-user value the middleware attaches
// to the request context for downstream handlers.
type Identity struct {
	ID     int64
	Nombre string
	Email  string
	Rol    string
}

// AuthMiddleware protects routes with a Bearer token check. The token's
// subject is re-resolved against the usuarios table on every request, so
// deleting an account revokes its outstanding tokens immediately.
func AuthMiddleware(jwtService *jwt.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "No autorizado, no se encontró token.",
			})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "No autorizado, token fallido o expirado.",
			})
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "No autorizado, usuario del token no encontrado.",
			})
			return
		}

		c.Set(identityKey, Identity{
			ID:     user.ID,
			Nombre: user.Nombre,
			Email:  user.Email,
			Rol:    user.Rol,
		})
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by AuthMiddleware
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
