package issues

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateway.go -package=mocks

// IssueGW defines the issue event publishing operations
type IssueGW interface {
	// PublishIssueCreated announces a newly reported issue
	PublishIssueCreated(ctx context.Context, issue *models.Issue) error
}
