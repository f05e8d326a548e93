package usecase

import (
	"context"
	"fmt"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

var issueStatuses = map[string]bool{
	models.IssueStatusReported:   true,
	models.IssueStatusInProgress: true,
	models.IssueStatusResolved:   true,
	models.IssueStatusClosed:     true,
}

var issuePriorities = map[string]bool{
	models.IssuePriorityLow:      true,
	models.IssuePriorityMedium:   true,
	models.IssuePriorityHigh:     true,
	models.IssuePriorityCritical: true,
}

// CreateIssue records a new issue. The reporter is always the acting
// user; status starts at reported and the priority defaults to medium.
func (u *IssueUC) CreateIssue(ctx context.Context, reporter *models.User, req *models.IssueCreateRequest) (*models.Issue, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.IssuePriorityMedium
	}
	if !issuePriorities[priority] {
		return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrInvalidInput, priority)
	}

	issue := &models.Issue{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.IssueStatusReported,
		Priority:    priority,
		Category:    req.Category,
		Location:    req.Location,
		ReportedBy:  reporter.ID,
	}

	if err := u.issueRepo.CreateIssue(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	if err := u.issueGW.PublishIssueCreated(ctx, issue); err != nil {
		logger.Warn("Failed to publish issue created event",
			logger.String("issue_id", issue.ID.String()),
			logger.Err(err))
	}

	logger.Info("Issue reported",
		logger.String("issue_id", issue.ID.String()),
		logger.String("reported_by", reporter.ID.String()),
		logger.String("priority", issue.Priority))

	return issue, nil
}

// GetIssue retrieves a single issue by id
func (u *IssueUC) GetIssue(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	return u.issueRepo.GetIssue(ctx, id)
}

// ListIssues lists issues matching the filter
func (u *IssueUC) ListIssues(ctx context.Context, filter *models.IssueFilter) ([]*models.Issue, error) {
	if filter == nil {
		filter = &models.IssueFilter{}
	}
	if filter.Status != "" && !issueStatuses[filter.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, filter.Status)
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return u.issueRepo.ListIssues(ctx, filter)
}

// PatchIssue applies the non-nil patch fields. Farmers may only modify
// issues they reported; the other roles may modify any issue.
func (u *IssueUC) PatchIssue(ctx context.Context, actor *models.User, id uuid.UUID, req *models.IssuePatchRequest) (*models.Issue, error) {
	issue, err := u.issueRepo.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleFarmer && issue.ReportedBy != actor.ID {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		issue.Title = *req.Title
	}
	if req.Description != nil {
		issue.Description = *req.Description
	}
	if req.Status != nil {
		if !issueStatuses[*req.Status] {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, *req.Status)
		}
		issue.Status = *req.Status
	}
	if req.Priority != nil {
		if !issuePriorities[*req.Priority] {
			return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrInvalidInput, *req.Priority)
		}
		issue.Priority = *req.Priority
	}
	if req.Category != nil {
		issue.Category = *req.Category
	}
	if req.Location != nil {
		issue.Location = *req.Location
	}
	if req.AssignedTo != nil {
		issue.AssignedTo = req.AssignedTo
	}

	if err := u.issueRepo.UpdateIssue(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}

	return issue, nil
}

// AddIssueUpdate appends a status-history entry and moves the issue to
// the new status in the same operation
func (u *IssueUC) AddIssueUpdate(ctx context.Context, actor *models.User, id uuid.UUID, req *models.IssueUpdateRequest) (*models.IssueUpdate, error) {
	if !issueStatuses[req.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidInput, req.Status)
	}

	issue, err := u.issueRepo.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleFarmer && issue.ReportedBy != actor.ID {
		return nil, apperrors.ErrForbidden
	}

	update := &models.IssueUpdate{
		IssueID:   issue.ID,
		Status:    req.Status,
		Notes:     req.Notes,
		CreatedBy: actor.ID,
	}
	if err := u.issueRepo.CreateIssueUpdate(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to record issue update: %w", err)
	}

	issue.Status = req.Status
	if err := u.issueRepo.UpdateIssue(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to move issue status: %w", err)
	}

	return update, nil
}

// ListIssueUpdates returns an issue's status history, oldest first
func (u *IssueUC) ListIssueUpdates(ctx context.Context, id uuid.UUID) ([]*models.IssueUpdate, error) {
	if _, err := u.issueRepo.GetIssue(ctx, id); err != nil {
		return nil, err
	}
	return u.issueRepo.ListIssueUpdates(ctx, id)
}
