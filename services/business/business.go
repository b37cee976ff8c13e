package business

import (
	"fmt"
	"time"

	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RegisterBusiness creates a tenant for the given owner. One business per
// owner; a second registration is rejected.
func (s *DefaultBusinessService) RegisterBusiness(req RegistrationRequest) (*models.Business, error) {
	existing, err := s.Repo.GetByOwner(req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing business: %w", err)
	}
	if existing != nil {
		return nil, ErrOwnerHasBusiness
	}

	biz := &models.Business{
		ID:          uuid.NewString(),
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.Repo.Create(biz); err != nil {
		return nil, fmt.Errorf("failed to register business: %w", err)
	}

	utils.GetLogger().Info("Business registered",
		zap.String("businessID", biz.ID), zap.String("ownerID", biz.OwnerID))
	return biz, nil
}

// GetBusinessByID retrieves a business by its ID.
func (s *DefaultBusinessService) GetBusinessByID(businessID string) (*models.Business, error) {
	biz, err := s.Repo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	if biz == nil {
		return nil, ErrBusinessNotFound
	}
	return biz, nil
}

// ResolveOwnerBusiness looks up the business owned by a user.
func (s *DefaultBusinessService) ResolveOwnerBusiness(ownerID string) (*models.Business, error) {
	biz, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve business for owner %s: %w", ownerID, err)
	}
	if biz == nil {
		return nil, ErrBusinessNotFound
	}
	return biz, nil
}

// ListBusinesses returns all registered businesses.
func (s *DefaultBusinessService) ListBusinesses() ([]models.Business, error) {
	businesses, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}

// UpdateBusiness applies the enumerated profile fields from the update request.
func (s *DefaultBusinessService) UpdateBusiness(req models.BusinessUpdateRequest) (*models.Business, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("business ID is required for update")
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Name != nil {
		updateFields["name"] = *req.Name
	}
	if req.Description != nil {
		updateFields["description"] = *req.Description
	}
	if req.Address != nil {
		updateFields["address"] = *req.Address
	}
	if req.PhoneNumber != nil {
		updateFields["phoneNumber"] = *req.PhoneNumber
	}

	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(req.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}
	return s.GetBusinessByID(req.ID)
}

// DeleteBusiness removes a business by ID.
func (s *DefaultBusinessService) DeleteBusiness(businessID string) error {
	if err := s.Repo.Delete(businessID); err != nil {
		return fmt.Errorf("failed to delete business with id %s: %w", businessID, err)
	}
	return nil
}
