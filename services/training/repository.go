package training

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// TrainingRepo defines the training content persistence operations
type TrainingRepo interface {
	CreateModule(ctx context.Context, module *models.TrainingModule) error
	GetModule(ctx context.Context, id uuid.UUID) (*models.TrainingModule, error)
	ListModules(ctx context.Context, language string) ([]*models.TrainingModule, error)
	UpdateModule(ctx context.Context, module *models.TrainingModule) error
	CreateStory(ctx context.Context, story *models.SuccessStory) error
	GetStory(ctx context.Context, id uuid.UUID) (*models.SuccessStory, error)
	ListStories(ctx context.Context, featuredOnly bool) ([]*models.SuccessStory, error)
}
