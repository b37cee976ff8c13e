package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"slotify/models"
	"slotify/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingService struct {
	slots     []models.Slot
	slotsErr  error
	created   *models.Appointment
	createErr error
}

func (s *stubBookingService) GetAvailableSlots(businessID, serviceID string, date time.Time) ([]models.Slot, error) {
	return s.slots, s.slotsErr
}
func (s *stubBookingService) CreateAppointment(ctx context.Context, req booking.CreateAppointmentRequest) (*models.Appointment, error) {
	return s.created, s.createErr
}
func (s *stubBookingService) GetAppointment(appointmentID string) (*models.Appointment, error) {
	return nil, booking.ErrAppointmentNotFound
}
func (s *stubBookingService) ConfirmAppointment(appointmentID string) (*models.Appointment, error) {
	return nil, nil
}
func (s *stubBookingService) CompleteAppointment(appointmentID string) (*models.Appointment, error) {
	return nil, nil
}
func (s *stubBookingService) CancelAppointment(appointmentID, requesterID string) (*models.Appointment, error) {
	return nil, nil
}
func (s *stubBookingService) ListBusinessAppointments(businessID string, date time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubBookingService) ListClientAppointments(clientID string) ([]models.Appointment, error) {
	return nil, nil
}

func newAvailabilityRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &BookingHandler{Service: svc}
	r := gin.New()
	r.GET("/api/businesses/:id/availability", h.GetAvailabilityHandler)
	r.POST("/api/appointments", func(c *gin.Context) {
		c.Set("userID", "client-1")
		h.CreateAppointmentHandler(c)
	})
	return r
}

func TestGetAvailabilityHandler(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := &stubBookingService{slots: []models.Slot{{Start: start, End: start.Add(time.Hour)}}}
	router := newAvailabilityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/availability?serviceId=svc-1&date=2026-03-02", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		BusinessID string        `json:"businessId"`
		Date       string        `json:"date"`
		Slots      []models.Slot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "biz-1", body.BusinessID)
	assert.Equal(t, "2026-03-02", body.Date)
	require.Len(t, body.Slots, 1)
	assert.True(t, body.Slots[0].Start.Equal(start))
}

func TestGetAvailabilityHandlerMissingServiceID(t *testing.T) {
	router := newAvailabilityRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/availability?date=2026-03-02", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailabilityHandlerBadDate(t *testing.T) {
	router := newAvailabilityRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/availability?serviceId=svc-1&date=March+2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailabilityHandlerHoursNotConfigured(t *testing.T) {
	router := newAvailabilityRouter(&stubBookingService{slotsErr: booking.ErrHoursNotConfigured})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/businesses/biz-1/availability?serviceId=svc-1&date=2026-03-02", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateAppointmentHandlerSlotTaken(t *testing.T) {
	router := newAvailabilityRouter(&stubBookingService{createErr: booking.ErrSlotTaken})

	payload := `{"businessId":"biz-1","serviceId":"svc-1","date":"2026-03-02","startTime":"10:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
