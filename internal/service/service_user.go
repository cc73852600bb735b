package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/internal/crypto"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/store"
	"github.com/jobseekr/go-job-board/models"
)

// userService implements the self-service profile operations.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the account behind id.
func (u *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return u.userRepository.FindUserByID(ctx, id)
}

// UpdateUser changes the display name and email of the account.
func (u *userService) UpdateUser(ctx context.Context, id uuid.UUID, name, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := u.userRepository.UpdateUser(ctx, models.User{
		ID:    id,
		Name:  name,
		Email: strings.ToLower(email),
	})
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// UpdatePassword verifies the current password and stores a hash of the new
// one. The hash is recomputed here and nowhere else on this path.
//
// Returns ErrWrongPassword when the current password does not match.
func (u *userService) UpdatePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !crypto.CheckPassword(currentPassword, user.PasswordHash) {
		log.Error().Str("id", id.String()).Msg("wrong current password")
		return models.User{}, ErrWrongPassword
	}

	passwordHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	if err := u.userRepository.UpdatePassword(ctx, id, passwordHash); err != nil {
		return models.User{}, fmt.Errorf("storing new password failed: %w", err)
	}

	return user, nil
}

// DeleteUser removes the account.
func (u *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return u.userRepository.DeleteUser(ctx, id)
}
