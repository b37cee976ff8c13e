package business

import (
	"fmt"

	"slotify/models"

	"github.com/google/uuid"
)

// AddService validates a catalogue entry and appends it to the business.
func (s *DefaultBusinessService) AddService(businessID string, req ServiceRequest) (*models.Service, error) {
	if err := validateServiceRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.GetBusinessByID(businessID); err != nil {
		return nil, err
	}

	svc := serviceFromRequest(uuid.NewString(), req)
	if err := s.Repo.AddService(businessID, svc); err != nil {
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	return &svc, nil
}

// UpdateService replaces a catalogue entry, keeping its ID.
func (s *DefaultBusinessService) UpdateService(businessID, serviceID string, req ServiceRequest) (*models.Service, error) {
	if err := validateServiceRequest(req); err != nil {
		return nil, err
	}

	biz, err := s.GetBusinessByID(businessID)
	if err != nil {
		return nil, err
	}
	if biz.ServiceByID(serviceID) == nil {
		return nil, ErrServiceNotFound
	}

	svc := serviceFromRequest(serviceID, req)
	if err := s.Repo.UpdateService(businessID, svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &svc, nil
}

// RemoveService deletes a catalogue entry.
func (s *DefaultBusinessService) RemoveService(businessID, serviceID string) error {
	biz, err := s.GetBusinessByID(businessID)
	if err != nil {
		return err
	}
	if biz.ServiceByID(serviceID) == nil {
		return ErrServiceNotFound
	}

	if err := s.Repo.RemoveService(businessID, serviceID); err != nil {
		return fmt.Errorf("failed to remove service: %w", err)
	}
	return nil
}

func serviceFromRequest(id string, req ServiceRequest) models.Service {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	return models.Service{
		ID:              id,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Currency:        currency,
		Active:          active,
	}
}

func validateServiceRequest(req ServiceRequest) error {
	if req.Name == "" {
		return &ValidationError{Reason: "service name is required"}
	}
	if req.DurationMinutes <= 0 {
		return &ValidationError{Reason: "service duration must be a positive number of minutes"}
	}
	if req.Price < 0 {
		return &ValidationError{Reason: "service price cannot be negative"}
	}
	return nil
}
