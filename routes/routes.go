package routes

import (
	"net/http"
	"time"

	"slotify/handlers"
	"slotify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.UpdatePasswordHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
		api.DELETE("/me/token", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterBusinessRoutes registers tenant endpoints: public discovery and
// availability under /api/businesses, owner management under /api/my/business.
// Ownership is resolved from the token, never from a client-supplied
// business ID.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.GET("", hb.ListBusinessesHandler)
		api.GET("/:id", hb.GetBusinessHandler)
		api.GET("/:id/hours", hb.GetWorkingHoursHandler)
		api.GET("/:id/availability", hb.GetAvailabilityHandler)

		api.POST("", middleware.JWTAuthMiddleware(hb.UserRepo), hb.RegisterBusinessHandler)
	}

	mine := r.Group("/api/my/business")
	{
		mine.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		mine.GET("", hb.GetMyBusinessHandler)
		mine.PATCH("", hb.UpdateBusinessHandler)
		mine.DELETE("", hb.DeleteBusinessHandler)
		mine.PUT("/hours", hb.SetWorkingHoursHandler)
		mine.POST("/services", hb.AddServiceHandler)
		mine.PUT("/services/:serviceID", hb.UpdateServiceHandler)
		mine.DELETE("/services/:serviceID", hb.RemoveServiceHandler)
		mine.GET("/appointments", hb.ListBusinessAppointmentsHandler)
		mine.GET("/payments", hb.ListBusinessPaymentsHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("", hb.ListMyAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id/confirm", hb.ConfirmAppointmentHandler)
		api.PUT("/:id/complete", hb.CompleteAppointmentHandler)
		api.PUT("/:id/cancel", hb.CancelAppointmentHandler)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.RecordPaymentHandler)
		api.GET("/:id", hb.GetPaymentHandler)
		api.PUT("/:id/paid", hb.MarkPaymentPaidHandler)
		api.PUT("/:id/failed", hb.MarkPaymentFailedHandler)
		api.PUT("/:id/refund", hb.RefundPaymentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Slotify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
