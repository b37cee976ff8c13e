package handlers

import (
	userRepoPkg "slotify/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetProfileHandler          gin.HandlerFunc
	UpdateProfileHandler       gin.HandlerFunc
	UpdatePasswordHandler      gin.HandlerFunc
	DeleteAccountHandler       gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Business endpoints
	RegisterBusinessHandler gin.HandlerFunc
	GetBusinessHandler      gin.HandlerFunc
	GetMyBusinessHandler    gin.HandlerFunc
	ListBusinessesHandler   gin.HandlerFunc
	UpdateBusinessHandler   gin.HandlerFunc
	DeleteBusinessHandler   gin.HandlerFunc

	// Working-hours endpoints
	SetWorkingHoursHandler gin.HandlerFunc
	GetWorkingHoursHandler gin.HandlerFunc

	// Service catalogue endpoints
	AddServiceHandler    gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	RemoveServiceHandler gin.HandlerFunc

	// Booking endpoints
	GetAvailabilityHandler          gin.HandlerFunc
	CreateAppointmentHandler        gin.HandlerFunc
	GetAppointmentHandler           gin.HandlerFunc
	ConfirmAppointmentHandler       gin.HandlerFunc
	CompleteAppointmentHandler      gin.HandlerFunc
	CancelAppointmentHandler        gin.HandlerFunc
	ListMyAppointmentsHandler       gin.HandlerFunc
	ListBusinessAppointmentsHandler gin.HandlerFunc

	// Payment endpoints
	RecordPaymentHandler        gin.HandlerFunc
	GetPaymentHandler           gin.HandlerFunc
	MarkPaymentPaidHandler      gin.HandlerFunc
	MarkPaymentFailedHandler    gin.HandlerFunc
	RefundPaymentHandler        gin.HandlerFunc
	ListBusinessPaymentsHandler gin.HandlerFunc
}
