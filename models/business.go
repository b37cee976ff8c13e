package models

import "time"

// Service is one bookable offering in a business's catalogue.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64 `bson:"price" json:"price"`
	Currency        string  `bson:"currency" json:"currency"`
	Active          bool    `bson:"active" json:"active"`
}

// Business is a tenant on the platform. The service catalogue and the
// per-weekday working hours are embedded in the business document.
type Business struct {
	ID          string         `bson:"id" json:"id"`
	OwnerID     string         `bson:"ownerId" json:"ownerId"`
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Address     string         `bson:"address,omitempty" json:"address,omitempty"`
	PhoneNumber string         `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Services    []Service      `bson:"services,omitempty" json:"services,omitempty"`
	Hours       []WorkingHours `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// HoursFor returns the working-hours record for the given weekday, or nil when
// the owner has not configured that day. A nil result is "not configured",
// which callers must distinguish from a configured-but-closed day.
func (b *Business) HoursFor(weekday time.Weekday) *WorkingHours {
	for i := range b.Hours {
		if b.Hours[i].Weekday == weekday {
			return &b.Hours[i]
		}
	}
	return nil
}

// ServiceByID returns the catalogue entry with the given ID, or nil.
func (b *Business) ServiceByID(serviceID string) *Service {
	for i := range b.Services {
		if b.Services[i].ID == serviceID {
			return &b.Services[i]
		}
	}
	return nil
}

// BusinessUpdateRequest enumerates the mutable business profile fields.
type BusinessUpdateRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}
