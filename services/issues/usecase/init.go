package usecase

import (
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/services/issues"
)

// IssueUC implements the issue usecase
type IssueUC struct {
	issueRepo issues.IssueRepo
	issueGW   issues.IssueGW
	cfg       *models.Config
}

// NewIssueUC creates a new issue usecase instance
func NewIssueUC(
	issueRepo issues.IssueRepo,
	issueGW issues.IssueGW,
	cfg *models.Config,
) *IssueUC {
	return &IssueUC{
		issueRepo: issueRepo,
		issueGW:   issueGW,
		cfg:       cfg,
	}
}
