package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const moduleColumns = `id, title, description, content, duration_minutes, language, is_active, created_at, updated_at`
const storyColumns = `id, title, description, farmer_id, location, before_images, after_images, is_featured, created_at, updated_at`

// TrainingRepo implements the training content repository over Postgres
type TrainingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTrainingRepo creates a new training repository instance
func NewTrainingRepo(cfg *models.Config, db *sqlx.DB) *TrainingRepo {
	return &TrainingRepo{cfg: cfg, db: db}
}

// CreateModule inserts a new training module record
func (r *TrainingRepo) CreateModule(ctx context.Context, module *models.TrainingModule) error {
	module.ID = uuid.New()
	now := time.Now()
	module.CreatedAt = now
	module.UpdatedAt = now

	query := `
		INSERT INTO training_modules (id, title, description, content, duration_minutes, language, is_active, created_at, updated_at)
		VALUES (:id, :title, :description, :content, :duration_minutes, :language, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, module); err != nil {
		return fmt.Errorf("failed to insert training module: %w", err)
	}
	return nil
}

// GetModule retrieves a module by id
func (r *TrainingRepo) GetModule(ctx context.Context, id uuid.UUID) (*models.TrainingModule, error) {
	query := fmt.Sprintf(`SELECT %s FROM training_modules WHERE id = $1`, moduleColumns)

	var module models.TrainingModule
	if err := r.db.GetContext(ctx, &module, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("failed to get training module: %w", err)
	}
	return &module, nil
}

// ListModules lists active modules, optionally narrowed to a language
func (r *TrainingRepo) ListModules(ctx context.Context, language string) ([]*models.TrainingModule, error) {
	query := fmt.Sprintf(`SELECT %s FROM training_modules WHERE is_active = true`, moduleColumns)
	args := []interface{}{}

	if language != "" {
		args = append(args, language)
		query += fmt.Sprintf(" AND language = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	list := []*models.TrainingModule{}
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list training modules: %w", err)
	}
	return list, nil
}

// UpdateModule replaces a module's content
func (r *TrainingRepo) UpdateModule(ctx context.Context, module *models.TrainingModule) error {
	module.UpdatedAt = time.Now()

	query := `
		UPDATE training_modules
		SET title = :title, description = :description, content = :content,
			duration_minutes = :duration_minutes, language = :language,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, module)
	if err != nil {
		return fmt.Errorf("failed to update training module: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update training module: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrModuleNotFound
	}
	return nil
}

// CreateStory inserts a new success story record
func (r *TrainingRepo) CreateStory(ctx context.Context, story *models.SuccessStory) error {
	story.ID = uuid.New()
	now := time.Now()
	story.CreatedAt = now
	story.UpdatedAt = now

	query := `
		INSERT INTO success_stories (id, title, description, farmer_id, location, before_images, after_images, is_featured, created_at, updated_at)
		VALUES (:id, :title, :description, :farmer_id, :location, :before_images, :after_images, :is_featured, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, story); err != nil {
		return fmt.Errorf("failed to insert success story: %w", err)
	}
	return nil
}

// GetStory retrieves a story by id
func (r *TrainingRepo) GetStory(ctx context.Context, id uuid.UUID) (*models.SuccessStory, error) {
	query := fmt.Sprintf(`SELECT %s FROM success_stories WHERE id = $1`, storyColumns)

	var story models.SuccessStory
	if err := r.db.GetContext(ctx, &story, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStoryNotFound
		}
		return nil, fmt.Errorf("failed to get success story: %w", err)
	}
	return &story, nil
}

// ListStories lists stories, newest first
func (r *TrainingRepo) ListStories(ctx context.Context, featuredOnly bool) ([]*models.SuccessStory, error) {
	query := fmt.Sprintf(`SELECT %s FROM success_stories`, storyColumns)
	if featuredOnly {
		query += ` WHERE is_featured = true`
	}
	query += ` ORDER BY created_at DESC`

	list := []*models.SuccessStory{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list success stories: %w", err)
	}
	return list, nil
}
