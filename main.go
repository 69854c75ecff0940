package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/YaderM/vetapp-web-completo/internal/cache"
	"github.com/YaderM/vetapp-web-completo/internal/config"
	"github.com/YaderM/vetapp-web-completo/internal/controllers"
	"github.com/YaderM/vetapp-web-completo/internal/database"
	"github.com/YaderM/vetapp-web-completo/internal/jwt"
	"github.com/YaderM/vetapp-web-completo/internal/middleware"
	"github.com/YaderM/vetapp-web-completo/internal/repository"
	"github.com/YaderM/vetapp-web-completo/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	ownerService := service.NewOwnerService(ownerRepo)
	patientService := service.NewPatientService(patientRepo, cacheClient, cacheTTL)
	appointmentService := service.NewAppointmentService(appointmentRepo, cacheClient, cacheTTL)
	profileService := service.NewProfileService(userRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	ownerController := controllers.NewOwnerController(ownerService)
	patientController := controllers.NewPatientController(patientService)
	appointmentController := controllers.NewAppointmentController(appointmentService)
	profileController := controllers.NewProfileController(profileService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes group with general rate limiting
	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Protected routes - require a valid bearer token
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService, userRepo))
		{
			propietarios := protected.Group("/propietarios")
			{
				propietarios.GET("", ownerController.List)
				propietarios.GET("/:id", ownerController.GetByID)
				propietarios.POST("", ownerController.Create)
				propietarios.PUT("/:id", ownerController.Update)
				propietarios.DELETE("/:id", ownerController.Delete)
			}

			pacientes := protected.Group("/pacientes")
			{
				pacientes.GET("", patientController.List)
				pacientes.GET("/:id", patientController.GetByID)
				pacientes.POST("", patientController.Create)
				pacientes.PUT("/:id", patientController.Update)
				pacientes.DELETE("/:id", patientController.Delete)
			}

			citas := protected.Group("/citas")
			{
				citas.GET("", appointmentController.List)
				citas.GET("/:id", appointmentController.GetByID)
				citas.POST("", appointmentController.Create)
				citas.PUT("/:id", appointmentController.Update)
				citas.DELETE("/:id", appointmentController.Delete)
			}

			perfil := protected.Group("/perfil")
			{
				perfil.GET("/me", profileController.GetMe)
				perfil.PUT("/me", profileController.UpdateMe)
			}
		}
	}

	addr := ":" + cfg.Port
	log.Printf("Server starting on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
