// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"campuscare/handlers"
	"campuscare/middleware"
	"campuscare/models"
	"campuscare/realtime"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the booking workflow endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole(models.RoleStudent), h.BookAppointment)
		api.GET("/student", middleware.RequireRole(models.RoleStudent), h.GetStudentAppointments)
		api.PUT("/:id/status", middleware.RequireRole(models.RoleDoctor), h.UpdateAppointmentStatus)
	}
}

// RegisterRealtimeRoute registers the websocket endpoint feeding the hub.
func RegisterRealtimeRoute(r *gin.Engine, hub *realtime.Hub) {
	r.GET("/ws", middleware.JWTAuthMiddleware(), hub.ServeWS())
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CampusCare"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.AppointmentHandler, hub *realtime.Hub) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, h)
	RegisterRealtimeRoute(r, hub)
	RegisterHealthRoute(r)
}
