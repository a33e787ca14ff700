// File: handlers/appointment_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campuscare/models"
	"campuscare/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	bookFn   func(ctx context.Context, studentID, doctorID string, slotTime time.Time) (*models.Appointment, error)
	updateFn func(ctx context.Context, appointmentID, status string) (*models.Appointment, error)
	listFn   func(ctx context.Context, studentID, statusFilter string) ([]models.AppointmentWithDoctor, error)
}

func (s *stubBookingService) Book(ctx context.Context, studentID, doctorID string, slotTime time.Time) (*models.Appointment, error) {
	return s.bookFn(ctx, studentID, doctorID, slotTime)
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error) {
	return s.updateFn(ctx, appointmentID, status)
}

func (s *stubBookingService) ListForStudent(ctx context.Context, studentID, statusFilter string) ([]models.AppointmentWithDoctor, error) {
	return s.listFn(ctx, studentID, statusFilter)
}

func newRouter(svc booking.BookingService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	h := NewAppointmentHandler(svc, zap.NewNop())
	r.POST("/api/appointments", h.BookAppointment)
	r.GET("/api/appointments/student", h.GetStudentAppointments)
	r.PUT("/api/appointments/:id/status", h.UpdateAppointmentStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestBookAppointment_Created(t *testing.T) {
	svc := &stubBookingService{
		bookFn: func(_ context.Context, studentID, doctorID string, slotTime time.Time) (*models.Appointment, error) {
			assert.Equal(t, "stu-1", studentID)
			assert.Equal(t, "doc-1", doctorID)
			return &models.Appointment{
				ID: "appt-1", StudentID: studentID, DoctorID: doctorID,
				SlotDateTime: slotTime, Status: models.StatusPending,
			}, nil
		},
	}
	r := newRouter(svc, "stu-1")

	w, body := doJSON(t, r, http.MethodPost, "/api/appointments",
		`{"doctorId":"doc-1","slotDateTime":"2026-09-14T10:00:00Z"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Appointment booked successfully.", body["message"])
	appt, ok := body["appointment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "appt-1", appt["id"])
	assert.Equal(t, "pending", appt["status"])
}

func TestBookAppointment_SlotUnavailable(t *testing.T) {
	svc := &stubBookingService{
		bookFn: func(_ context.Context, _, _ string, _ time.Time) (*models.Appointment, error) {
			return nil, booking.ErrSlotUnavailable
		},
	}
	r := newRouter(svc, "stu-1")

	w, body := doJSON(t, r, http.MethodPost, "/api/appointments",
		`{"doctorId":"doc-1","slotDateTime":"2026-09-14T10:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Time slot is not available.", body["message"])
}

func TestBookAppointment_SlotTaken(t *testing.T) {
	svc := &stubBookingService{
		bookFn: func(_ context.Context, _, _ string, _ time.Time) (*models.Appointment, error) {
			return nil, booking.ErrSlotTaken
		},
	}
	r := newRouter(svc, "stu-1")

	w, body := doJSON(t, r, http.MethodPost, "/api/appointments",
		`{"doctorId":"doc-1","slotDateTime":"2026-09-14T10:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Time slot already booked.", body["message"])
}

func TestBookAppointment_MissingBodyFields(t *testing.T) {
	svc := &stubBookingService{
		bookFn: func(_ context.Context, _, _ string, _ time.Time) (*models.Appointment, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	r := newRouter(svc, "stu-1")

	w, body := doJSON(t, r, http.MethodPost, "/api/appointments", `{"doctorId":"doc-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "doctorId and slotDateTime are required.", body["message"])
}

func TestBookAppointment_PersistenceError(t *testing.T) {
	svc := &stubBookingService{
		bookFn: func(_ context.Context, _, _ string, _ time.Time) (*models.Appointment, error) {
			return nil, errors.New("write concern timeout")
		},
	}
	r := newRouter(svc, "stu-1")

	w, body := doJSON(t, r, http.MethodPost, "/api/appointments",
		`{"doctorId":"doc-1","slotDateTime":"2026-09-14T10:00:00Z"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", body["message"])
	assert.Contains(t, body["error"], "write concern timeout")
}

func TestGetStudentAppointments_PassesStatusFilter(t *testing.T) {
	svc := &stubBookingService{
		listFn: func(_ context.Context, studentID, statusFilter string) ([]models.AppointmentWithDoctor, error) {
			assert.Equal(t, "stu-1", studentID)
			assert.Equal(t, "confirmed", statusFilter)
			return []models.AppointmentWithDoctor{
				{
					Appointment: models.Appointment{ID: "appt-1", Status: models.StatusConfirmed},
					Doctor:      models.DoctorInfo{ID: "doc-1", Name: "Dr. Okoye", Specialization: "Dermatology"},
				},
			}, nil
		},
	}
	r := newRouter(svc, "stu-1")

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/student?status=confirmed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.AppointmentWithDoctor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Dr. Okoye", list[0].Doctor.Name)
}

func TestGetStudentAppointments_EmptyListNotNull(t *testing.T) {
	svc := &stubBookingService{
		listFn: func(_ context.Context, _, _ string) ([]models.AppointmentWithDoctor, error) {
			return nil, nil
		},
	}
	r := newRouter(svc, "stu-1")

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/student", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestUpdateAppointmentStatus_Confirmed(t *testing.T) {
	svc := &stubBookingService{
		updateFn: func(_ context.Context, appointmentID, status string) (*models.Appointment, error) {
			assert.Equal(t, "appt-1", appointmentID)
			assert.Equal(t, "confirmed", status)
			return &models.Appointment{ID: appointmentID, Status: status}, nil
		},
	}
	r := newRouter(svc, "doc-1")

	w, body := doJSON(t, r, http.MethodPut, "/api/appointments/appt-1/status", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Appointment confirmed successfully", body["message"])
}

func TestUpdateAppointmentStatus_NotFound(t *testing.T) {
	svc := &stubBookingService{
		updateFn: func(_ context.Context, _, _ string) (*models.Appointment, error) {
			return nil, booking.ErrNotFound
		},
	}
	r := newRouter(svc, "doc-1")

	w, body := doJSON(t, r, http.MethodPut, "/api/appointments/ghost/status", `{"status":"cancelled"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Appointment not found", body["message"])
}

func TestUpdateAppointmentStatus_InvalidStatus(t *testing.T) {
	svc := &stubBookingService{
		updateFn: func(_ context.Context, _, _ string) (*models.Appointment, error) {
			return nil, booking.ErrInvalidStatus
		},
	}
	r := newRouter(svc, "doc-1")

	w, body := doJSON(t, r, http.MethodPut, "/api/appointments/appt-1/status", `{"status":"rescheduled"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Status must be confirmed or cancelled.", body["message"])
}
