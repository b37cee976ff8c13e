package handlers

import (
	"errors"
	"net/http"

	"slotify/models"
	"slotify/services/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler exposes tenant management endpoints: profile, working
// hours, and the service catalogue.
type BusinessHandler struct {
	Service business.BusinessService
}

func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// RegisterBusinessHandler handles POST /api/businesses.
func (h *BusinessHandler) RegisterBusinessHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}

	var req business.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.OwnerID = userID

	biz, err := h.Service.RegisterBusiness(req)
	if err != nil {
		if errors.Is(err, business.ErrOwnerHasBusiness) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if business.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Business registration failed", zap.String("ownerID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register business"})
		return
	}
	c.JSON(http.StatusCreated, biz)
}

// GetBusinessHandler handles GET /api/businesses/:id.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	biz, err := h.Service.GetBusinessByID(c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// GetMyBusinessHandler handles GET /api/my/business.
func (h *BusinessHandler) GetMyBusinessHandler(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		return
	}

	biz, err := h.Service.ResolveOwnerBusiness(userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, biz)
}

// ListBusinessesHandler handles GET /api/businesses.
func (h *BusinessHandler) ListBusinessesHandler(c *gin.Context) {
	bizs, err := h.Service.ListBusinesses()
	if err != nil {
		getLogger(c).Error("Failed to list businesses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses"})
		return
	}
	c.JSON(http.StatusOK, bizs)
}

// UpdateBusinessHandler handles PATCH /api/my/business.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	biz := h.ownedBusiness(c)
	if biz == nil {
		return
	}

	var req models.BusinessUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = biz.ID

	updated, err := h.Service.UpdateBusiness(req)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBusinessHandler handles DELETE /api/my/business.
func (h *BusinessHandler) DeleteBusinessHandler(c *gin.Context) {
	biz := h.ownedBusiness(c)
	if biz == nil {
		return
	}

	if err := h.Service.DeleteBusiness(biz.ID); err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted"})
}

// SetWorkingHoursHandler handles PUT /api/my/business/hours. The payload is
// one weekday's configuration; saving replaces that weekday's record.
func (h *BusinessHandler) SetWorkingHoursHandler(c *gin.Context) {
	biz := h.ownedBusiness(c)
	if biz == nil {
		return
	}

	var hours models.WorkingHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.SetWorkingHours(biz.ID, hours); err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Working hours saved"})
}

// GetWorkingHoursHandler handles GET /api/businesses/:id/hours.
func (h *BusinessHandler) GetWorkingHoursHandler(c *gin.Context) {
	hours, err := h.Service.GetWorkingHours(c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

// AddServiceHandler handles POST /api/my/business/services.
func (h *BusinessHandler) AddServiceHandler(c *gin.Context) {
	biz := h.ownedBusiness(c)
	if biz == nil {
		return
	}

	var req business.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.AddService(biz.ID, req)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/my/business/services/:serviceID.
func (h *BusinessHandler) UpdateServiceHandler(c *gin.Context) {
	biz := h.ownedBusiness(c)
	if biz == nil {
		return
	}

	var req business.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(biz.ID, c.Param("serviceID"), req)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// RemoveServiceHandler handles DELETE /api/my/business/services/:serviceID.
func (h *BusinessHandler) RemoveServiceHandler(c *gin.Context) {
	biz := h.ownedBusiness(c)
	if biz == nil {
		return
	}

	if err := h.Service.RemoveService(biz.ID, c.Param("serviceID")); err != nil {
		writeBusinessError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service removed"})
}

// ownedBusiness resolves the business owned by the authenticated user. On
// failure it writes the response itself and returns nil.
func (h *BusinessHandler) ownedBusiness(c *gin.Context) *models.Business {
	userID := authUserID(c)
	if userID == "" {
		return nil
	}

	biz, err := h.Service.ResolveOwnerBusiness(userID)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "You have no registered business"})
			return nil
		}
		getLogger(c).Error("Failed to resolve owner business", zap.String("ownerID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve business"})
		return nil
	}
	return biz
}

func writeBusinessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, business.ErrBusinessNotFound), errors.Is(err, business.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case business.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("Business operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
