package paymentRepo

import "slotify/models"

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByAppointment(appointmentID string) (*models.Payment, error)
	ListByBusiness(businessID string) ([]models.Payment, error)
	UpdateStatus(id, status, failureMessage string) error
}
