package usecase

import (
	"context"
	"fmt"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/services/schemes"
	"github.com/google/uuid"
)

// SchemeUC implements the government scheme usecase
type SchemeUC struct {
	schemeRepo schemes.SchemeRepo
	cfg        *models.Config
}

// NewSchemeUC creates a new scheme usecase instance
func NewSchemeUC(schemeRepo schemes.SchemeRepo, cfg *models.Config) *SchemeUC {
	return &SchemeUC{schemeRepo: schemeRepo, cfg: cfg}
}

// CreateScheme publishes a new scheme listing. Only ngo_admin may
// manage scheme content.
func (u *SchemeUC) CreateScheme(ctx context.Context, actor *models.User, scheme *models.GovernmentScheme) (*models.GovernmentScheme, error) {
	if actor.Role != models.RoleNGOAdmin {
		return nil, apperrors.ErrForbidden
	}
	if scheme.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}

	scheme.IsActive = true
	if err := u.schemeRepo.CreateScheme(ctx, scheme); err != nil {
		return nil, fmt.Errorf("failed to create scheme: %w", err)
	}

	logger.Info("Scheme published",
		logger.String("scheme_id", scheme.ID.String()),
		logger.String("created_by", actor.ID.String()))
	return scheme, nil
}

// GetScheme retrieves a scheme by id
func (u *SchemeUC) GetScheme(ctx context.Context, id uuid.UUID) (*models.GovernmentScheme, error) {
	return u.schemeRepo.GetScheme(ctx, id)
}

// ListSchemes lists schemes, active ones only unless asked otherwise
func (u *SchemeUC) ListSchemes(ctx context.Context, includeInactive bool) ([]*models.GovernmentScheme, error) {
	return u.schemeRepo.ListSchemes(ctx, includeInactive)
}

// UpdateScheme replaces a scheme's content. Only ngo_admin may manage
// scheme content.
func (u *SchemeUC) UpdateScheme(ctx context.Context, actor *models.User, id uuid.UUID, scheme *models.GovernmentScheme) (*models.GovernmentScheme, error) {
	if actor.Role != models.RoleNGOAdmin {
		return nil, apperrors.ErrForbidden
	}

	current, err := u.schemeRepo.GetScheme(ctx, id)
	if err != nil {
		return nil, err
	}

	scheme.ID = current.ID
	scheme.CreatedAt = current.CreatedAt
	if err := u.schemeRepo.UpdateScheme(ctx, scheme); err != nil {
		return nil, fmt.Errorf("failed to update scheme: %w", err)
	}
	return scheme, nil
}
