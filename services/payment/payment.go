package payment

import (
	"fmt"
	"math"
	"strings"
	"time"

	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"
)

// RecordPayment opens a payment for an appointment. Card payments create a
// Stripe PaymentIntent and start as pending until MarkPaid settles them; cash
// payments start as pending and are marked paid at the counter.
func (s *DefaultPaymentService) RecordPayment(req RecordPaymentRequest) (*models.Payment, error) {
	logger := utils.GetLogger()

	if req.Method != models.PaymentMethodCard && req.Method != models.PaymentMethodCash {
		return nil, ErrInvalidMethod
	}

	appt, err := s.AppointmentRepo.GetByID(req.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	existing, err := s.Repo.GetByAppointment(req.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing payment: %w", err)
	}
	if existing != nil {
		return nil, ErrPaymentExists
	}

	now := time.Now()
	pay := &models.Payment{
		ID:            uuid.NewString(),
		AppointmentID: appt.ID,
		BusinessID:    appt.BusinessID,
		ClientID:      appt.ClientID,
		Amount:        appt.Price,
		Currency:      appt.Currency,
		Method:        req.Method,
		Status:        models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if req.Method == models.PaymentMethodCard {
		intent, err := createPaymentIntent(pay)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		pay.StripeIntentID = intent.ID
	}

	if err := s.Repo.Create(pay); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	logger.Info("Payment recorded",
		zap.String("paymentID", pay.ID),
		zap.String("appointmentID", pay.AppointmentID),
		zap.String("method", pay.Method))
	return pay, nil
}

// GetPayment retrieves a payment by ID.
func (s *DefaultPaymentService) GetPayment(paymentID string) (*models.Payment, error) {
	pay, err := s.Repo.GetByID(paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if pay == nil {
		return nil, ErrPaymentNotFound
	}
	return pay, nil
}

// GetAppointmentPayment retrieves the payment attached to an appointment.
func (s *DefaultPaymentService) GetAppointmentPayment(appointmentID string) (*models.Payment, error) {
	pay, err := s.Repo.GetByAppointment(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if pay == nil {
		return nil, ErrPaymentNotFound
	}
	return pay, nil
}

// ListBusinessPayments returns a business's payment records.
func (s *DefaultPaymentService) ListBusinessPayments(businessID string) ([]models.Payment, error) {
	pays, err := s.Repo.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return pays, nil
}

// MarkPaid settles a pending payment and flips the appointment to paid.
func (s *DefaultPaymentService) MarkPaid(paymentID string) (*models.Payment, error) {
	return s.settle(paymentID, models.PaymentStatusSucceeded, models.PaymentPaid, "")
}

// MarkFailed records a failed card charge. The appointment stays unpaid so
// the client can retry.
func (s *DefaultPaymentService) MarkFailed(paymentID, reason string) (*models.Payment, error) {
	pay, err := s.GetPayment(paymentID)
	if err != nil {
		return nil, err
	}
	if pay.Status != models.PaymentStatusPending {
		return nil, ErrInvalidState
	}

	if err := s.Repo.UpdateStatus(paymentID, models.PaymentStatusFailed, reason); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	pay.Status = models.PaymentStatusFailed
	pay.FailureMessage = reason
	return pay, nil
}

// RefundPayment refunds a succeeded payment. Card payments are refunded
// through Stripe against the original intent.
func (s *DefaultPaymentService) RefundPayment(paymentID string) (*models.Payment, error) {
	pay, err := s.GetPayment(paymentID)
	if err != nil {
		return nil, err
	}
	if pay.Status != models.PaymentStatusSucceeded {
		return nil, ErrInvalidState
	}

	if pay.Method == models.PaymentMethodCard && pay.StripeIntentID != "" {
		if _, err := refund.New(&stripe.RefundParams{
			PaymentIntent: stripe.String(pay.StripeIntentID),
		}); err != nil {
			return nil, fmt.Errorf("stripe refund failed: %w", err)
		}
	}

	if err := s.Repo.UpdateStatus(paymentID, models.PaymentStatusRefunded, ""); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	if err := s.AppointmentRepo.UpdatePaymentStatus(pay.AppointmentID, models.PaymentRefunded); err != nil {
		return nil, fmt.Errorf("failed to update appointment payment status: %w", err)
	}

	utils.GetLogger().Info("Payment refunded",
		zap.String("paymentID", pay.ID),
		zap.String("appointmentID", pay.AppointmentID))
	pay.Status = models.PaymentStatusRefunded
	return pay, nil
}

func (s *DefaultPaymentService) settle(paymentID, paymentStatus, apptStatus, failure string) (*models.Payment, error) {
	pay, err := s.GetPayment(paymentID)
	if err != nil {
		return nil, err
	}
	if pay.Status != models.PaymentStatusPending {
		return nil, ErrInvalidState
	}

	if err := s.Repo.UpdateStatus(paymentID, paymentStatus, failure); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	if err := s.AppointmentRepo.UpdatePaymentStatus(pay.AppointmentID, apptStatus); err != nil {
		return nil, fmt.Errorf("failed to update appointment payment status: %w", err)
	}
	pay.Status = paymentStatus
	return pay, nil
}

// createPaymentIntent opens a Stripe PaymentIntent for the payment amount.
// Stripe wants the amount in the currency's minor unit.
func createPaymentIntent(pay *models.Payment) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(pay.Amount * 100))),
		Currency: stripe.String(strings.ToLower(pay.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("appointmentId", pay.AppointmentID)
	params.AddMetadata("paymentId", pay.ID)
	return paymentintent.New(params)
}
