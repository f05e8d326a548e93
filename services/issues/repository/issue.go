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
)

const issueColumns = `id, title, description, status, priority, category, location, reported_by, assigned_to, created_at, updated_at`

// CreateIssue inserts a new issue record
func (r *IssueRepo) CreateIssue(ctx context.Context, issue *models.Issue) error {
	issue.ID = uuid.New()
	now := time.Now()
	issue.CreatedAt = now
	issue.UpdatedAt = now

	query := `
		INSERT INTO issues (id, title, description, status, priority, category, location, reported_by, assigned_to, created_at, updated_at)
		VALUES (:id, :title, :description, :status, :priority, :category, :location, :reported_by, :assigned_to, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, issue); err != nil {
		return fmt.Errorf("failed to insert issue: %w", err)
	}
	return nil
}

// GetIssue retrieves an issue by id
func (r *IssueRepo) GetIssue(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	query := fmt.Sprintf(`SELECT %s FROM issues WHERE id = $1`, issueColumns)

	var issue models.Issue
	if err := r.db.GetContext(ctx, &issue, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return &issue, nil
}

// ListIssues lists issues matching the filter, newest first
func (r *IssueRepo) ListIssues(ctx context.Context, filter *models.IssueFilter) ([]*models.Issue, error) {
	query := fmt.Sprintf(`SELECT %s FROM issues WHERE 1=1`, issueColumns)
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.ReportedBy != nil {
		args = append(args, *filter.ReportedBy)
		query += fmt.Sprintf(" AND reported_by = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	issues := []*models.Issue{}
	if err := r.db.SelectContext(ctx, &issues, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}

// UpdateIssue persists all mutable issue fields
func (r *IssueRepo) UpdateIssue(ctx context.Context, issue *models.Issue) error {
	issue.UpdatedAt = time.Now()

	query := `
		UPDATE issues
		SET title = :title, description = :description, status = :status,
			priority = :priority, category = :category, location = :location,
			assigned_to = :assigned_to, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, issue)
	if err != nil {
		return fmt.Errorf("failed to update issue: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update issue: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrIssueNotFound
	}
	return nil
}

// CreateIssueUpdate appends a status-history entry
func (r *IssueRepo) CreateIssueUpdate(ctx context.Context, update *models.IssueUpdate) error {
	update.ID = uuid.New()
	update.CreatedAt = time.Now()

	query := `
		INSERT INTO issue_updates (id, issue_id, status, notes, created_by, created_at)
		VALUES (:id, :issue_id, :status, :notes, :created_by, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, update); err != nil {
		return fmt.Errorf("failed to insert issue update: %w", err)
	}
	return nil
}

// ListIssueUpdates returns an issue's history, oldest first
func (r *IssueRepo) ListIssueUpdates(ctx context.Context, issueID uuid.UUID) ([]*models.IssueUpdate, error) {
	query := `
		SELECT id, issue_id, status, notes, created_by, created_at
		FROM issue_updates
		WHERE issue_id = $1
		ORDER BY created_at ASC
	`

	updates := []*models.IssueUpdate{}
	if err := r.db.SelectContext(ctx, &updates, query, issueID); err != nil {
		return nil, fmt.Errorf("failed to list issue updates: %w", err)
	}
	return updates, nil
}
