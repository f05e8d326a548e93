package usecase

import (
	"context"
	"fmt"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

// GetUserByID retrieves a user by its identifier
func (u *UserUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", apperrors.ErrUserNotFound)
	}

	return u.userRepo.GetUserByID(ctx, userID)
}

// UpdateUser applies the mutable user fields (name, language). The role
// and active flag are not reachable from here.
func (u *UserUC) UpdateUser(ctx context.Context, id uuid.UUID, req *models.UserUpdateRequest) (*models.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Language != "" {
		user.Language = req.Language
	}

	if err := u.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// UpsertFarmerProfile creates or replaces the caller's farmer profile
func (u *UserUC) UpsertFarmerProfile(ctx context.Context, userID uuid.UUID, profile *models.FarmerProfile) error {
	if _, err := u.userRepo.GetUserByID(ctx, userID); err != nil {
		return err
	}

	profile.UserID = userID
	if err := u.userRepo.UpsertFarmerProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to upsert farmer profile: %w", err)
	}
	return nil
}
