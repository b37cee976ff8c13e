package handlers

import (
	"errors"
	"net/http"
	"time"

	"slotify/models"
	"slotify/services/availability"
	"slotify/services/booking"
	"slotify/services/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateQueryLayout = "2006-01-02"

// BookingHandler exposes availability queries and the appointment lifecycle.
type BookingHandler struct {
	Service     booking.BookingService
	BusinessSvc business.BusinessService
}

func NewBookingHandler(svc booking.BookingService, bizSvc business.BusinessService) *BookingHandler {
	return &BookingHandler{Service: svc, BusinessSvc: bizSvc}
}

// GetAvailabilityHandler handles
// GET /api/businesses/:id/availability?serviceId=...&date=YYYY-MM-DD.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	businessID := c.Param("id")
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId query parameter is required"})
		return
	}

	date, err := time.Parse(dateQueryLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	slots, err := h.Service.GetAvailableSlots(businessID, serviceID, date)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"businessId": businessID,
		"serviceId":  serviceID,
		"date":       date.Format(dateQueryLayout),
		"slots":      slots,
	})
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}

	var req booking.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ClientID = userID

	appt, err := h.Service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentHandler handles GET /api/appointments/:id. Only the booking
// client or the business owner may view an appointment.
func (h *BookingHandler) GetAppointmentHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}

	appt, err := h.Service.GetAppointment(c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	if appt.ClientID != userID && !h.ownsBusiness(userID, appt.BusinessID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your appointment"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ConfirmAppointmentHandler handles PUT /api/appointments/:id/confirm.
// Business owners only.
func (h *BookingHandler) ConfirmAppointmentHandler(c *gin.Context) {
	h.ownerTransition(c, h.Service.ConfirmAppointment)
}

// CompleteAppointmentHandler handles PUT /api/appointments/:id/complete.
// Business owners only.
func (h *BookingHandler) CompleteAppointmentHandler(c *gin.Context) {
	h.ownerTransition(c, h.Service.CompleteAppointment)
}

// CancelAppointmentHandler handles PUT /api/appointments/:id/cancel. The
// booking client or the business owner may cancel; cancelling frees the slot.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}
	appointmentID := c.Param("id")

	appt, err := h.Service.GetAppointment(appointmentID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	requesterID := userID
	if appt.ClientID != userID {
		if !h.ownsBusiness(userID, appt.BusinessID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your appointment"})
			return
		}
		// Owner cancellation: ownership already verified above.
		requesterID = ""
	}

	cancelled, err := h.Service.CancelAppointment(appointmentID, requesterID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// ListMyAppointmentsHandler handles GET /api/appointments (the client's own).
func (h *BookingHandler) ListMyAppointmentsHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}

	appts, err := h.Service.ListClientAppointments(userID)
	if err != nil {
		getLogger(c).Error("Failed to list appointments", zap.String("clientID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListBusinessAppointmentsHandler handles
// GET /api/my/business/appointments?date=YYYY-MM-DD.
func (h *BookingHandler) ListBusinessAppointmentsHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}

	biz, err := h.BusinessSvc.ResolveOwnerBusiness(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "You have no registered business"})
		return
	}

	date, err := time.Parse(dateQueryLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	appts, err := h.Service.ListBusinessAppointments(biz.ID, date)
	if err != nil {
		getLogger(c).Error("Failed to list appointments", zap.String("businessID", biz.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ownerTransition runs a status transition after verifying the caller owns
// the appointment's business.
func (h *BookingHandler) ownerTransition(c *gin.Context, fn func(string) (*models.Appointment, error)) {
	userID := authUserID(c)
	if userID == "" {
		return
	}
	appointmentID := c.Param("id")

	appt, err := h.Service.GetAppointment(appointmentID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	if !h.ownsBusiness(userID, appt.BusinessID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the business owner can do this"})
		return
	}

	updated, err := fn(appointmentID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) ownsBusiness(userID, businessID string) bool {
	biz, err := h.BusinessSvc.ResolveOwnerBusiness(userID)
	return err == nil && biz != nil && biz.ID == businessID
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBusinessNotFound),
		errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSlotTaken), errors.Is(err, booking.ErrSlotNotOffered):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrHoursNotConfigured):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNotAppointmentOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case availability.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
