package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeserv/config"
	"homeserv/database"
	bookingRepoPkg "homeserv/database/repository/booking"
	professionalRepoPkg "homeserv/database/repository/professional"
	userRepoPkg "homeserv/database/repository/user"
	"homeserv/handlers"
	"homeserv/middleware"
	"homeserv/routes"
	"homeserv/services/booking"
	"homeserv/services/professional"
	"homeserv/services/triage"
	"homeserv/services/user"
	"homeserv/utils"

	"github.com/gin-gonic/gin"
)

// newAdvisoryModel selects the advisory backend from configuration.
func newAdvisoryModel() triage.AdvisoryModel {
	if config.AppConfig.AdvisoryBackend == "gemini" {
		return triage.NewGeminiModel(config.AppConfig.GeminiAPIKey)
	}
	return triage.NewOpenRouterModel(config.AppConfig.OpenRouterAPIKey, config.AppConfig.OpenRouterModel)
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	professionalRepo := professionalRepoPkg.NewMongoProfessionalRepo()

	// services.
	bookingService := &booking.DefaultBookingService{Repo: bookingRepo}
	userService := &user.DefaultUserService{Repo: userRepo}
	professionalService := &professional.DefaultProfessionalService{Repo: professionalRepo}

	advisoryClient := triage.NewAdvisoryClient(newAdvisoryModel())
	triageService := triage.NewDefaultTriageService(advisoryClient, bookingService)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:          handlers.NewBookingHandler(bookingService),
		Chat:             handlers.NewChatHandler(triageService),
		Auth:             handlers.NewAuthHandler(userService),
		ProfessionalAuth: handlers.NewProfessionalAuthHandler(professionalService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
