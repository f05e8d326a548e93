package usecase

import (
	"context"
	"fmt"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/services/training"
	"github.com/google/uuid"
)

// TrainingUC implements the training content usecase
type TrainingUC struct {
	trainingRepo training.TrainingRepo
	cfg          *models.Config
}

// NewTrainingUC creates a new training usecase instance
func NewTrainingUC(trainingRepo training.TrainingRepo, cfg *models.Config) *TrainingUC {
	return &TrainingUC{trainingRepo: trainingRepo, cfg: cfg}
}

// CreateModule publishes a new training module. Only ngo_admin manages
// training content.
func (u *TrainingUC) CreateModule(ctx context.Context, actor *models.User, module *models.TrainingModule) (*models.TrainingModule, error) {
	if actor.Role != models.RoleNGOAdmin {
		return nil, apperrors.ErrForbidden
	}
	if module.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}

	if module.Language == "" {
		module.Language = "en"
	}
	module.IsActive = true

	if err := u.trainingRepo.CreateModule(ctx, module); err != nil {
		return nil, fmt.Errorf("failed to create training module: %w", err)
	}

	logger.Info("Training module published",
		logger.String("module_id", module.ID.String()),
		logger.String("language", module.Language))
	return module, nil
}

// GetModule retrieves a module by id
func (u *TrainingUC) GetModule(ctx context.Context, id uuid.UUID) (*models.TrainingModule, error) {
	return u.trainingRepo.GetModule(ctx, id)
}

// ListModules lists active modules, optionally narrowed to a language
func (u *TrainingUC) ListModules(ctx context.Context, language string) ([]*models.TrainingModule, error) {
	return u.trainingRepo.ListModules(ctx, language)
}

// UpdateModule replaces a module's content. Only ngo_admin manages
// training content.
func (u *TrainingUC) UpdateModule(ctx context.Context, actor *models.User, id uuid.UUID, module *models.TrainingModule) (*models.TrainingModule, error) {
	if actor.Role != models.RoleNGOAdmin {
		return nil, apperrors.ErrForbidden
	}

	current, err := u.trainingRepo.GetModule(ctx, id)
	if err != nil {
		return nil, err
	}

	module.ID = current.ID
	module.CreatedAt = current.CreatedAt
	if err := u.trainingRepo.UpdateModule(ctx, module); err != nil {
		return nil, fmt.Errorf("failed to update training module: %w", err)
	}
	return module, nil
}

// CreateStory records a success story. A farmer may only submit their
// own story; the other roles may submit on any farmer's behalf.
func (u *TrainingUC) CreateStory(ctx context.Context, actor *models.User, story *models.SuccessStory) (*models.SuccessStory, error) {
	if story.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}

	if actor.Role == models.RoleFarmer {
		story.FarmerID = actor.ID
	} else if story.FarmerID == uuid.Nil {
		return nil, fmt.Errorf("%w: farmer_id is required", apperrors.ErrInvalidInput)
	}

	// Featuring is an editorial decision, not a submission field
	story.IsFeatured = false

	if err := u.trainingRepo.CreateStory(ctx, story); err != nil {
		return nil, fmt.Errorf("failed to create success story: %w", err)
	}

	logger.Info("Success story recorded",
		logger.String("story_id", story.ID.String()),
		logger.String("farmer_id", story.FarmerID.String()))
	return story, nil
}

// GetStory retrieves a story by id
func (u *TrainingUC) GetStory(ctx context.Context, id uuid.UUID) (*models.SuccessStory, error) {
	return u.trainingRepo.GetStory(ctx, id)
}

// ListStories lists stories, optionally narrowed to featured ones
func (u *TrainingUC) ListStories(ctx context.Context, featuredOnly bool) ([]*models.SuccessStory, error) {
	return u.trainingRepo.ListStories(ctx, featuredOnly)
}
