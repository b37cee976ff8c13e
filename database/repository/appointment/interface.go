package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"slotify/models"
)

// ErrSlotConflict is returned when an insert would overlap an existing
// non-cancelled appointment for the same business. Callers must treat it as a
// rejection and recompute availability, never overwrite.
var ErrSlotConflict = errors.New("requested interval overlaps an existing appointment")

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	// CreateConflictChecked inserts the appointment only if no non-cancelled
	// appointment for the same business overlaps [Start, End). The check and
	// the insert run in one transaction.
	CreateConflictChecked(ctx context.Context, appt *models.Appointment) error

	GetByID(id string) (*models.Appointment, error)
	Delete(id string) error
	UpdateStatus(id, status string) error
	UpdatePaymentStatus(id, paymentStatus string) error

	// GetBookedIntervals returns the occupied [start, end) ranges of all
	// non-cancelled appointments for a business on a calendar date.
	GetBookedIntervals(businessID string, date time.Time) ([]models.BookedInterval, error)

	ListByBusinessDate(businessID string, date time.Time) ([]models.Appointment, error)
	ListByClient(clientID string) ([]models.Appointment, error)
}
