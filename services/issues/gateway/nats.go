package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agriconnect/agriconnect/internal/pkg/constants"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	natspkg "github.com/agriconnect/agriconnect/internal/pkg/nats"
)

// IssueGW implements the issue event gateway over NATS
type IssueGW struct {
	natsClient *natspkg.Client
}

// NewIssueGW creates a new issue gateway instance
func NewIssueGW(natsClient *natspkg.Client) *IssueGW {
	return &IssueGW{natsClient: natsClient}
}

// PublishIssueCreated announces a newly reported issue
func (g *IssueGW) PublishIssueCreated(_ context.Context, issue *models.Issue) error {
	data, err := json.Marshal(issue)
	if err != nil {
		return fmt.Errorf("failed to marshal issue event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectIssueCreated, data); err != nil {
		return fmt.Errorf("failed to publish issue created event: %w", err)
	}

	logger.Debug("Published issue created event",
		logger.String("issue_id", issue.ID.String()),
		logger.String("subject", constants.SubjectIssueCreated))
	return nil
}
