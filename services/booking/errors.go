package booking

import "errors"

var (
	// ErrBusinessNotFound is returned when the target business does not exist.
	ErrBusinessNotFound = errors.New("business not found")

	// ErrServiceNotFound is returned when the requested service is not in the
	// business catalogue or is inactive.
	ErrServiceNotFound = errors.New("service not found")

	// ErrHoursNotConfigured is returned when a business has no working-hours
	// configuration at all — distinct from a day that is simply closed.
	ErrHoursNotConfigured = errors.New("business has not configured working hours yet")

	// ErrSlotTaken is returned when the requested slot is no longer available.
	// The caller must recompute availability and offer fresh slots; the
	// original booking attempt is rejected, never overwritten.
	ErrSlotTaken = errors.New("the requested slot is no longer available")

	// ErrSlotNotOffered is returned when the requested start time does not
	// match any currently offered slot (off-grid, in a break, or in the past).
	ErrSlotNotOffered = errors.New("the requested time is not an offered slot")

	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition is returned for a lifecycle change the current
	// status does not allow.
	ErrInvalidTransition = errors.New("appointment status does not allow this transition")

	// ErrNotAppointmentOwner is returned when a client tries to cancel an
	// appointment they did not book.
	ErrNotAppointmentOwner = errors.New("appointment belongs to another client")
)
