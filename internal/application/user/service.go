// Package user provides the application layer for user profiles.
package user

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ladlehq/ladle/internal/domain/user"
	"github.com/ladlehq/ladle/internal/ports/outbound"
	"github.com/ladlehq/ladle/pkg/errors"
)

// ProfileDTO is the transfer representation of a user profile
type ProfileDTO struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	MeasurementSystem string    `json:"measurement_system"`
	DefaultServings   int       `json:"default_servings"`
}

// UserService implements user profile use cases
type UserService struct {
	userRepo outbound.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo outbound.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger.Named("user-service"),
	}
}

// RegisterProfile creates a profile for an externally authenticated user.
// Credentials never pass through here; the auth provider owns them and
// supplies the user ID and email through the verified token.
func (s *UserService) RegisterProfile(ctx context.Context, userID uuid.UUID, email, name string) (*ProfileDTO, error) {
	s.logger.Info("Registering profile", zap.String("email", email))

	entity, err := user.NewUser(userID, email, name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.FindByEmail(ctx, entity.Email())
	if err != nil && err != user.ErrUserNotFound {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if existing != nil {
		return nil, errors.NewEmailAlreadyExistsError(entity.Email())
	}

	if err := s.userRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create user", err)
	}

	return entityToDTO(entity), nil
}

// GetProfile retrieves a user profile by ID
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, errors.NewUserNotFoundError(userID.String())
		}
		return nil, errors.NewDatabaseError("find user", err)
	}
	if entity == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}
	return entityToDTO(entity), nil
}

// UpdateProfile updates the mutable parts of a user profile
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, name string, prefs user.Preferences) (*ProfileDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || entity == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}

	if name != "" {
		if err := entity.Rename(name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	entity.UpdatePreferences(prefs)

	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update user", err)
	}

	return entityToDTO(entity), nil
}

func entityToDTO(entity *user.User) *ProfileDTO {
	prefs := entity.Preferences()
	return &ProfileDTO{
		ID:                entity.ID(),
		Email:             entity.Email(),
		Name:              entity.Name(),
		MeasurementSystem: string(prefs.MeasurementSystem),
		DefaultServings:   prefs.DefaultServings,
	}
}
