package payment

import "errors"

var (
	// ErrPaymentNotFound is returned when the payment record does not exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrAppointmentNotFound is returned when the appointment the payment
	// targets does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrPaymentExists is returned when the appointment already has a payment.
	ErrPaymentExists = errors.New("appointment already has a payment")

	// ErrInvalidMethod is returned for a payment method other than card or cash.
	ErrInvalidMethod = errors.New("payment method must be card or cash")

	// ErrInvalidState is returned when the payment's current status does not
	// allow the requested change.
	ErrInvalidState = errors.New("payment status does not allow this operation")
)
