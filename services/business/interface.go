package business

import (
	businessRepo "slotify/database/repository/business"
	"slotify/models"
)

// BusinessService manages tenants: profile, service catalogue, working hours.
type BusinessService interface {
	RegisterBusiness(req RegistrationRequest) (*models.Business, error)
	GetBusinessByID(businessID string) (*models.Business, error)
	// ResolveOwnerBusiness looks up the business owned by a user. The result
	// is never cached on the user record; callers pass the resolved ID along
	// explicitly.
	ResolveOwnerBusiness(ownerID string) (*models.Business, error)
	ListBusinesses() ([]models.Business, error)
	UpdateBusiness(req models.BusinessUpdateRequest) (*models.Business, error)
	DeleteBusiness(businessID string) error

	SetWorkingHours(businessID string, hours models.WorkingHours) error
	GetWorkingHours(businessID string) ([]models.WorkingHours, error)

	AddService(businessID string, req ServiceRequest) (*models.Service, error)
	UpdateService(businessID, serviceID string, req ServiceRequest) (*models.Service, error)
	RemoveService(businessID, serviceID string) error
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo businessRepo.BusinessRepository
}

// RegistrationRequest carries the fields needed to register a business.
type RegistrationRequest struct {
	OwnerID     string `json:"-"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

// ServiceRequest carries the fields of a catalogue entry.
type ServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes" binding:"required"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	Active          *bool   `json:"active"`
}
