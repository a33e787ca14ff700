// File: handlers/appointment.go
package handlers

import (
	"errors"
	"net/http"

	"campuscare/models"
	"campuscare/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking workflow over HTTP.
type AppointmentHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc booking.BookingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// BookAppointment handles POST /api/appointments for students.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "doctorId and slotDateTime are required."})
		return
	}
	studentID := c.GetString("userID")

	appt, err := h.Service.Book(c.Request.Context(), studentID, req.DoctorID, req.SlotDateTime)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "doctorId and slotDateTime are required."})
		case errors.Is(err, booking.ErrSlotUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Time slot is not available."})
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Time slot already booked."})
		default:
			h.Logger.Error("booking failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully.",
		"appointment": appt,
	})
}

// GetStudentAppointments handles GET /api/appointments/student, with an
// optional ?status= filter.
func (h *AppointmentHandler) GetStudentAppointments(c *gin.Context) {
	studentID := c.GetString("userID")
	statusFilter := c.Query("status")

	appts, err := h.Service.ListForStudent(c.Request.Context(), studentID, statusFilter)
	if err != nil {
		h.Logger.Error("appointment listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	if appts == nil {
		appts = []models.AppointmentWithDoctor{}
	}

	c.JSON(http.StatusOK, appts)
}

// UpdateAppointmentStatus handles PUT /api/appointments/:id/status for
// doctors confirming or cancelling.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	appointmentID := c.Param("id")
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status is required."})
		return
	}

	appt, err := h.Service.UpdateStatus(c.Request.Context(), appointmentID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be confirmed or cancelled."})
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
		default:
			h.Logger.Error("status update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment " + appt.Status + " successfully"})
}
