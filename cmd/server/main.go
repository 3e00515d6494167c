package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient_registry/internal/config"
	"patient_registry/internal/handler"
	"patient_registry/internal/middleware"
	"patient_registry/internal/model"
	"patient_registry/internal/repository"
	"patient_registry/internal/service"
	"patient_registry/internal/store"
	"patient_registry/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	// Ensure data directory exists
	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("Failed to create data directory")
	}
	logger.Info().Str("dir", cfg.DataDir).Msg("Collections will be stored in data directory")

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	// --- Initialize Stores ---
	patientStore := store.NewCollection[model.Patient]("patients", cfg.PatientsFile, logger)
	userStore := store.NewCollection[model.User]("users", cfg.UsersFile, logger)

	// --- Initialize Repositories ---
	patientRepo := repository.NewPatientRepository(patientStore)
	userRepo := repository.NewUserRepository(userStore)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	patientService := service.NewPatientService(patientRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, logger)
	patientHandler := handler.NewPatientHandler(patientService, logger)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminRoleMW := middleware.AdminMiddleware()
	staffRoleMW := middleware.StaffMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/")
	authHandler.RegisterAuthRoutes(apiGroup)
	patientHandler.RegisterPatientRoutes(apiGroup, jwtAuthMW, adminRoleMW, staffRoleMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exiting")
}
