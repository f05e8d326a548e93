package issues

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// IssueRepo defines the issue persistence operations
type IssueRepo interface {
	CreateIssue(ctx context.Context, issue *models.Issue) error
	GetIssue(ctx context.Context, id uuid.UUID) (*models.Issue, error)
	ListIssues(ctx context.Context, filter *models.IssueFilter) ([]*models.Issue, error)
	UpdateIssue(ctx context.Context, issue *models.Issue) error
	CreateIssueUpdate(ctx context.Context, update *models.IssueUpdate) error
	ListIssueUpdates(ctx context.Context, issueID uuid.UUID) ([]*models.IssueUpdate, error)
}
