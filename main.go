package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/database"
	appointmentRepoPkg "slotify/database/repository/appointment"
	businessRepoPkg "slotify/database/repository/business"
	paymentRepoPkg "slotify/database/repository/payment"
	userRepoPkg "slotify/database/repository/user"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/availability"
	"slotify/services/booking"
	"slotify/services/business"
	"slotify/services/payment"
	"slotify/services/user"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	businessService := &business.DefaultBusinessService{
		Repo: businessRepo,
	}
	bookingService := &booking.DefaultBookingService{
		BusinessRepo:    businessRepo,
		AppointmentRepo: appointmentRepo,
		Engine:          availability.NewEngine(),
		Cache:           utils.GetCacheClient(),
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:            paymentRepo,
		AppointmentRepo: appointmentRepo,
	}

	userHandler := handlers.NewUserHandler(userService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	bookingHandler := handlers.NewBookingHandler(bookingService, businessService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, businessService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:        userHandler.RegisterUserHandler,
		AuthenticateUserHandler:    userHandler.AuthenticateUserHandler,
		GetProfileHandler:          userHandler.GetProfileHandler,
		UpdateProfileHandler:       userHandler.UpdateProfileHandler,
		UpdatePasswordHandler:      userHandler.UpdatePasswordHandler,
		DeleteAccountHandler:       userHandler.DeleteAccountHandler,
		RevokeUserAuthTokenHandler: userHandler.RevokeUserAuthTokenHandler,

		// Business endpoints.
		RegisterBusinessHandler: businessHandler.RegisterBusinessHandler,
		GetBusinessHandler:      businessHandler.GetBusinessHandler,
		GetMyBusinessHandler:    businessHandler.GetMyBusinessHandler,
		ListBusinessesHandler:   businessHandler.ListBusinessesHandler,
		UpdateBusinessHandler:   businessHandler.UpdateBusinessHandler,
		DeleteBusinessHandler:   businessHandler.DeleteBusinessHandler,

		// Working-hours endpoints.
		SetWorkingHoursHandler: businessHandler.SetWorkingHoursHandler,
		GetWorkingHoursHandler: businessHandler.GetWorkingHoursHandler,

		// Service catalogue endpoints.
		AddServiceHandler:    businessHandler.AddServiceHandler,
		UpdateServiceHandler: businessHandler.UpdateServiceHandler,
		RemoveServiceHandler: businessHandler.RemoveServiceHandler,

		// Booking endpoints.
		GetAvailabilityHandler:          bookingHandler.GetAvailabilityHandler,
		CreateAppointmentHandler:        bookingHandler.CreateAppointmentHandler,
		GetAppointmentHandler:           bookingHandler.GetAppointmentHandler,
		ConfirmAppointmentHandler:       bookingHandler.ConfirmAppointmentHandler,
		CompleteAppointmentHandler:      bookingHandler.CompleteAppointmentHandler,
		CancelAppointmentHandler:        bookingHandler.CancelAppointmentHandler,
		ListMyAppointmentsHandler:       bookingHandler.ListMyAppointmentsHandler,
		ListBusinessAppointmentsHandler: bookingHandler.ListBusinessAppointmentsHandler,

		// Payment endpoints.
		RecordPaymentHandler:        paymentHandler.RecordPaymentHandler,
		GetPaymentHandler:           paymentHandler.GetPaymentHandler,
		MarkPaymentPaidHandler:      paymentHandler.MarkPaymentPaidHandler,
		MarkPaymentFailedHandler:    paymentHandler.MarkPaymentFailedHandler,
		RefundPaymentHandler:        paymentHandler.RefundPaymentHandler,
		ListBusinessPaymentsHandler: paymentHandler.ListBusinessPaymentsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
