package payment

import (
	appointmentRepo "slotify/database/repository/appointment"
	paymentRepo "slotify/database/repository/payment"
	"slotify/models"
)

// PaymentService records and settles the money side of appointments. Card
// payments open a Stripe PaymentIntent and settle asynchronously; cash
// payments are recorded directly and marked paid by the business owner.
type PaymentService interface {
	RecordPayment(req RecordPaymentRequest) (*models.Payment, error)
	GetPayment(paymentID string) (*models.Payment, error)
	GetAppointmentPayment(appointmentID string) (*models.Payment, error)
	ListBusinessPayments(businessID string) ([]models.Payment, error)

	MarkPaid(paymentID string) (*models.Payment, error)
	MarkFailed(paymentID, reason string) (*models.Payment, error)
	RefundPayment(paymentID string) (*models.Payment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo            paymentRepo.PaymentRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

// RecordPaymentRequest opens a payment for an appointment.
type RecordPaymentRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	Method        string `json:"method" binding:"required"` // "card" or "cash"
}
