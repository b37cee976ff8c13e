package models

import "time"

// User represents a platform account: a client booking appointments or a
// business owner. Business ownership is resolved through the businesses
// collection, never cached on the user document.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdateRequest enumerates the fields a user may change on their profile.
// Partial updates are built from these fields only; arbitrary documents are
// never merged into the stored record.
type UserUpdateRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}
