package training

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// TrainingUC defines the training content usecase operations
type TrainingUC interface {
	// CreateModule publishes a new training module; ngo_admin only
	CreateModule(ctx context.Context, actor *models.User, module *models.TrainingModule) (*models.TrainingModule, error)

	// GetModule retrieves a module by id
	GetModule(ctx context.Context, id uuid.UUID) (*models.TrainingModule, error)

	// ListModules lists active modules, optionally narrowed to a language
	ListModules(ctx context.Context, language string) ([]*models.TrainingModule, error)

	// UpdateModule replaces a module's content; ngo_admin only
	UpdateModule(ctx context.Context, actor *models.User, id uuid.UUID, module *models.TrainingModule) (*models.TrainingModule, error)

	// CreateStory records a success story for a farmer
	CreateStory(ctx context.Context, actor *models.User, story *models.SuccessStory) (*models.SuccessStory, error)

	// GetStory retrieves a story by id
	GetStory(ctx context.Context, id uuid.UUID) (*models.SuccessStory, error)

	// ListStories lists stories; featuredOnly narrows to featured ones
	ListStories(ctx context.Context, featuredOnly bool) ([]*models.SuccessStory, error)
}
