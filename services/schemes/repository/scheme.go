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

const schemeColumns = `id, title, description, eligibility_criteria, benefits, documents_required, application_process, website_url, is_active, created_at, updated_at`

// SchemeRepo implements the scheme repository over Postgres
type SchemeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewSchemeRepo creates a new scheme repository instance
func NewSchemeRepo(cfg *models.Config, db *sqlx.DB) *SchemeRepo {
	return &SchemeRepo{cfg: cfg, db: db}
}

// CreateScheme inserts a new scheme record
func (r *SchemeRepo) CreateScheme(ctx context.Context, scheme *models.GovernmentScheme) error {
	scheme.ID = uuid.New()
	now := time.Now()
	scheme.CreatedAt = now
	scheme.UpdatedAt = now

	query := `
		INSERT INTO government_schemes (id, title, description, eligibility_criteria, benefits, documents_required, application_process, website_url, is_active, created_at, updated_at)
		VALUES (:id, :title, :description, :eligibility_criteria, :benefits, :documents_required, :application_process, :website_url, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, scheme); err != nil {
		return fmt.Errorf("failed to insert scheme: %w", err)
	}
	return nil
}

// GetScheme retrieves a scheme by id
func (r *SchemeRepo) GetScheme(ctx context.Context, id uuid.UUID) (*models.GovernmentScheme, error) {
	query := fmt.Sprintf(`SELECT %s FROM government_schemes WHERE id = $1`, schemeColumns)

	var scheme models.GovernmentScheme
	if err := r.db.GetContext(ctx, &scheme, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrSchemeNotFound
		}
		return nil, fmt.Errorf("failed to get scheme: %w", err)
	}
	return &scheme, nil
}

// ListSchemes lists schemes, newest first
func (r *SchemeRepo) ListSchemes(ctx context.Context, includeInactive bool) ([]*models.GovernmentScheme, error) {
	query := fmt.Sprintf(`SELECT %s FROM government_schemes`, schemeColumns)
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	list := []*models.GovernmentScheme{}
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("failed to list schemes: %w", err)
	}
	return list, nil
}

// UpdateScheme replaces a scheme's content
func (r *SchemeRepo) UpdateScheme(ctx context.Context, scheme *models.GovernmentScheme) error {
	scheme.UpdatedAt = time.Now()

	query := `
		UPDATE government_schemes
		SET title = :title, description = :description,
			eligibility_criteria = :eligibility_criteria, benefits = :benefits,
			documents_required = :documents_required, application_process = :application_process,
			website_url = :website_url, is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, scheme)
	if err != nil {
		return fmt.Errorf("failed to update scheme: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update scheme: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrSchemeNotFound
	}
	return nil
}
