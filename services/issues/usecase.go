package issues

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// IssueUC defines the issue usecase operations
type IssueUC interface {
	// CreateIssue records a new issue reported by the given user
	CreateIssue(ctx context.Context, reporter *models.User, req *models.IssueCreateRequest) (*models.Issue, error)

	// GetIssue retrieves a single issue by id
	GetIssue(ctx context.Context, id uuid.UUID) (*models.Issue, error)

	// ListIssues lists issues matching the filter
	ListIssues(ctx context.Context, filter *models.IssueFilter) ([]*models.Issue, error)

	// PatchIssue applies the non-nil fields of the patch to an issue.
	// Farmers may only modify their own reports.
	PatchIssue(ctx context.Context, actor *models.User, id uuid.UUID, req *models.IssuePatchRequest) (*models.Issue, error)

	// AddIssueUpdate appends a status-history entry and moves the issue
	// to the entry's status
	AddIssueUpdate(ctx context.Context, actor *models.User, id uuid.UUID, req *models.IssueUpdateRequest) (*models.IssueUpdate, error)

	// ListIssueUpdates returns an issue's status history, oldest first
	ListIssueUpdates(ctx context.Context, id uuid.UUID) ([]*models.IssueUpdate, error)
}
