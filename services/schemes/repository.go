package schemes

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// SchemeRepo defines the scheme persistence operations
type SchemeRepo interface {
	CreateScheme(ctx context.Context, scheme *models.GovernmentScheme) error
	GetScheme(ctx context.Context, id uuid.UUID) (*models.GovernmentScheme, error)
	ListSchemes(ctx context.Context, includeInactive bool) ([]*models.GovernmentScheme, error)
	UpdateScheme(ctx context.Context, scheme *models.GovernmentScheme) error
}
