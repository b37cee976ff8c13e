package user

import (
	"fmt"
	"strings"
	"time"

	"slotify/models"
	"slotify/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UpdateUser applies the enumerated profile fields from the update request.
// Only fields present on the request type can ever reach the database.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	logger := utils.GetLogger()

	if req.ID == "" {
		return nil, fmt.Errorf("user ID is required for update")
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Name != nil {
		updateFields["name"] = *req.Name
	}
	if req.Email != nil {
		updateFields["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.PhoneNumber != nil {
		updateFields["phoneNumber"] = *req.PhoneNumber
	}

	if len(updateFields) == 1 {
		logger.Warn("No updatable fields provided", zap.String("userID", req.ID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(req.ID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", req.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUserByID(req.ID)
}

// UpdateUserPassword verifies the current password and stores a new hash.
// The auth token is revoked so all sessions re-authenticate.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to retrieve user: %w", err)
	}
	if existing == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updateDoc := bson.M{
		"passwordHash": string(newHash),
		"updatedAt":    time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}

	return s.RevokeAuthToken(userID)
}

// GetUserByID retrieves a user by ID, excluding sensitive fields.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	projection := bson.M{"passwordHash": 0, "tokenHash": 0}
	usr, err := s.Repo.GetByIDWithProjection(userID, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by email, excluding sensitive fields.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	projection := bson.M{"passwordHash": 0, "tokenHash": 0}
	usr, err := s.Repo.GetByEmailWithProjection(strings.ToLower(strings.TrimSpace(email)), projection)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// DeleteUser removes a user by ID.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", userID, err)
	}
	return nil
}
