package models

import "time"

// Payment method values.
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// Payment record states.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusFailed    = "failed"
)

// Payment is the money side of an appointment.
type Payment struct {
	ID              string    `bson:"id" json:"id"`
	AppointmentID   string    `bson:"appointmentId" json:"appointmentId"`
	BusinessID      string    `bson:"businessId" json:"businessId"`
	ClientID        string    `bson:"clientId" json:"clientId"`
	Amount          float64   `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	Method          string    `bson:"method" json:"method"` // "card" or "cash"
	Status          string    `bson:"status" json:"status"`
	StripeIntentID  string    `bson:"stripeIntentId,omitempty" json:"stripeIntentId,omitempty"`
	FailureMessage  string    `bson:"failureMessage,omitempty" json:"failureMessage,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
