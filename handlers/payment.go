package handlers

import (
	"errors"
	"net/http"

	"slotify/services/business"
	"slotify/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment endpoints.
type PaymentHandler struct {
	Service     payment.PaymentService
	BusinessSvc business.BusinessService
}

func NewPaymentHandler(svc payment.PaymentService, bizSvc business.BusinessService) *PaymentHandler {
	return &PaymentHandler{Service: svc, BusinessSvc: bizSvc}
}

// RecordPaymentHandler handles POST /api/payments. Card payments open a
// Stripe PaymentIntent; cash payments are settled later by the owner.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}

	var req payment.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	pay, err := h.Service.RecordPayment(req)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pay)
}

// GetPaymentHandler handles GET /api/payments/:id.
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	pay, err := h.Service.GetPayment(c.Param("id"))
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, pay)
}

// MarkPaymentPaidHandler handles PUT /api/payments/:id/paid. Business owners
// only; settles the payment and flips the appointment to paid.
func (h *PaymentHandler) MarkPaymentPaidHandler(c *gin.Context) {
	h.ownerAction(c, func(id string) error {
		_, err := h.Service.MarkPaid(id)
		return err
	})
}

// MarkPaymentFailedHandler handles PUT /api/payments/:id/failed.
func (h *PaymentHandler) MarkPaymentFailedHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	h.ownerAction(c, func(id string) error {
		_, err := h.Service.MarkFailed(id, req.Reason)
		return err
	})
}

// RefundPaymentHandler handles PUT /api/payments/:id/refund.
func (h *PaymentHandler) RefundPaymentHandler(c *gin.Context) {
	h.ownerAction(c, func(id string) error {
		_, err := h.Service.RefundPayment(id)
		return err
	})
}

// ListBusinessPaymentsHandler handles GET /api/my/business/payments.
func (h *PaymentHandler) ListBusinessPaymentsHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}

	biz, err := h.BusinessSvc.ResolveOwnerBusiness(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "You have no registered business"})
		return
	}

	pays, err := h.Service.ListBusinessPayments(biz.ID)
	if err != nil {
		getLogger(c).Error("Failed to list payments", zap.String("businessID", biz.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}
	c.JSON(http.StatusOK, pays)
}

// ownerAction runs a payment mutation after verifying the caller owns the
// payment's business, then returns the fresh record.
func (h *PaymentHandler) ownerAction(c *gin.Context, fn func(string) error) {
	userID := authUserID(c)
	if userID == "" {
		return
	}
	paymentID := c.Param("id")

	pay, err := h.Service.GetPayment(paymentID)
	if err != nil {
		writePaymentError(c, err)
		return
	}

	biz, err := h.BusinessSvc.ResolveOwnerBusiness(userID)
	if err != nil || biz == nil || biz.ID != pay.BusinessID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the business owner can do this"})
		return
	}

	if err := fn(paymentID); err != nil {
		writePaymentError(c, err)
		return
	}

	updated, err := h.Service.GetPayment(paymentID)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func writePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound), errors.Is(err, payment.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, payment.ErrPaymentExists), errors.Is(err, payment.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, payment.ErrInvalidMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("Payment operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
