package user

import (
	userRepo "slotify/database/repository/user"
	"slotify/models"
)

// UserService manages accounts and their auth tokens.
type UserService interface {
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)

	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest carries the fields needed to open an account.
type RegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required"`
}

// AuthResponse contains the user's ID, token, and profile basics.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
