package user

import (
	"context"
	"fmt"
	"strings"

	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"go.mongodb.org/mongo-driver/bson"

	"slotify/models"
)

// Register creates an account, issues a token and caches its hash in the auth
// cache so subsequent requests validate without a DB round trip.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(usr)
	if err != nil {
		logger.Error("Failed to issue token after registration", zap.String("userID", usr.ID), zap.Error(err))
		return nil, err
	}

	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email}, nil
}

// Authenticate verifies credentials and rotates the user's auth token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email}, nil
}

// RevokeAuthToken clears the stored token hash and its cache entry, signing
// the user out everywhere.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to retrieve user: %w", err)
	}
	if usr == nil {
		return ErrUserNotFound
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userID
	if err := authCache.Del(context.Background(), cacheKey).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache on logout", zap.Error(err))
	}
	return nil
}

func (s *DefaultUserService) issueToken(usr *models.User) (string, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, utils.AuthTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache auth token hash", zap.String("userID", usr.ID), zap.Error(err))
	}
	return token, nil
}
