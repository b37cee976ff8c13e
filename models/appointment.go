package models

import "time"

// Appointment lifecycle states.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment payment states.
const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Appointment is a client's confirmed claim on a business time interval.
// [Start, End) is half-open: appointments touching at a boundary do not
// conflict. No two non-cancelled appointments for one business may overlap.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	BusinessID    string    `bson:"businessId" json:"businessId"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	Date          string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start         time.Time `bson:"start" json:"start"`
	End           time.Time `bson:"end" json:"end"`
	Status        string    `bson:"status" json:"status"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	Price         float64   `bson:"price" json:"price"`
	Currency      string    `bson:"currency" json:"currency"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookedInterval is the slice of an appointment the availability engine sees:
// an occupied [Start, End) range on the requested date.
type BookedInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
