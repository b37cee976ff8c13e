package businessRepo

import (
	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BusinessRepository defines persistence operations for businesses, their
// service catalogues and their working-hours configuration.
type BusinessRepository interface {
	Create(biz *models.Business) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Business, error)
	GetByOwner(ownerID string) (*models.Business, error)
	GetAll() ([]models.Business, error)

	// Working hours (one record per weekday, replaced wholesale on save).
	UpsertWorkingHours(businessID string, hours models.WorkingHours) error

	// Service catalogue.
	AddService(businessID string, svc models.Service) error
	UpdateService(businessID string, svc models.Service) error
	RemoveService(businessID, serviceID string) error
}
