package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// GovernmentScheme represents a subsidy or support program listing
type GovernmentScheme struct {
	ID                  uuid.UUID      `json:"id" db:"id"`
	Title               string         `json:"title" db:"title"`
	Description         string         `json:"description" db:"description"`
	EligibilityCriteria types.JSONText `json:"eligibility_criteria,omitempty" db:"eligibility_criteria"`
	Benefits            types.JSONText `json:"benefits,omitempty" db:"benefits"`
	DocumentsRequired   types.JSONText `json:"documents_required,omitempty" db:"documents_required"`
	ApplicationProcess  string         `json:"application_process" db:"application_process"`
	WebsiteURL          string         `json:"website_url" db:"website_url"`
	IsActive            bool           `json:"is_active" db:"is_active"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`
}
