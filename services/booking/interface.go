package booking

import (
	"context"
	"time"

	appointmentRepo "slotify/database/repository/appointment"
	businessRepo "slotify/database/repository/business"
	"slotify/models"
	"slotify/services/availability"

	"github.com/go-redis/redis/v8"
)

// BookingService answers availability queries and drives the appointment
// lifecycle. Availability is computed by the engine from the business's
// working hours and the intervals already booked; the insert path re-validates
// the no-overlap invariant transactionally, so a slot that was free when shown
// can still be rejected at booking time.
type BookingService interface {
	GetAvailableSlots(businessID, serviceID string, date time.Time) ([]models.Slot, error)

	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointment(appointmentID string) (*models.Appointment, error)
	ConfirmAppointment(appointmentID string) (*models.Appointment, error)
	CompleteAppointment(appointmentID string) (*models.Appointment, error)
	CancelAppointment(appointmentID, requesterID string) (*models.Appointment, error)

	ListBusinessAppointments(businessID string, date time.Time) ([]models.Appointment, error)
	ListClientAppointments(clientID string) ([]models.Appointment, error)
}

// DefaultBookingService is the production implementation. Cache is optional;
// when set, computed availability is cached briefly and dropped whenever a
// booking or cancellation changes the business's day.
type DefaultBookingService struct {
	BusinessRepo    businessRepo.BusinessRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Engine          *availability.Engine
	Cache           *redis.Client
}

// CreateAppointmentRequest carries the fields needed to book a slot.
type CreateAppointmentRequest struct {
	ClientID   string `json:"-"`
	BusinessID string `json:"businessId" binding:"required"`
	ServiceID  string `json:"serviceId" binding:"required"`
	Date       string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime  string `json:"startTime" binding:"required"` // "HH:MM"
	Notes      string `json:"notes"`
}
