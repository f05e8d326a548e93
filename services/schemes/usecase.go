package schemes

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// SchemeUC defines the government scheme usecase operations
type SchemeUC interface {
	// CreateScheme publishes a new scheme listing; ngo_admin only
	CreateScheme(ctx context.Context, actor *models.User, scheme *models.GovernmentScheme) (*models.GovernmentScheme, error)

	// GetScheme retrieves a scheme by id
	GetScheme(ctx context.Context, id uuid.UUID) (*models.GovernmentScheme, error)

	// ListSchemes lists schemes; inactive listings are included only
	// when includeInactive is set
	ListSchemes(ctx context.Context, includeInactive bool) ([]*models.GovernmentScheme, error)

	// UpdateScheme replaces a scheme's content; ngo_admin only
	UpdateScheme(ctx context.Context, actor *models.User, id uuid.UUID, scheme *models.GovernmentScheme) (*models.GovernmentScheme, error)
}
