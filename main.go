// File: campuscare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campuscare/config"
	"campuscare/database"
	appointmentRepo "campuscare/database/repository/appointment"
	availabilityRepo "campuscare/database/repository/availability"
	notificationRepo "campuscare/database/repository/notification"
	"campuscare/handlers"
	"campuscare/middleware"
	"campuscare/realtime"
	"campuscare/routes"
	"campuscare/services/booking"
	"campuscare/services/notification"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
)

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
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := apptRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	cancel()

	// realtime channel.
	hub := realtime.NewHub(logger)

	// services.
	notifierService := &notification.DefaultNotificationService{
		Repo:    notifRepo,
		Channel: hub,
		Logger:  logger,
	}
	bookingService := &booking.DefaultBookingService{
		Availability: availRepo,
		Appointments: apptRepo,
		Notifier:     notifierService,
		Logger:       logger,
	}

	appointmentHandler := handlers.NewAppointmentHandler(bookingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, appointmentHandler, hub)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
