package repository

import (
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// IssueRepo implements the issue repository over Postgres
type IssueRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewIssueRepo creates a new issue repository instance
func NewIssueRepo(cfg *models.Config, db *sqlx.DB) *IssueRepo {
	return &IssueRepo{cfg: cfg, db: db}
}
