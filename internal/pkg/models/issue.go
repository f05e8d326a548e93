package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// Issue lifecycle states
const (
	IssueStatusReported   = "reported"
	IssueStatusInProgress = "in_progress"
	IssueStatusResolved   = "resolved"
	IssueStatusClosed     = "closed"
)

// Issue priorities
const (
	IssuePriorityLow      = "low"
	IssuePriorityMedium   = "medium"
	IssuePriorityHigh     = "high"
	IssuePriorityCritical = "critical"
)

// Issue represents a field issue reported by a user
type Issue struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Status      string         `json:"status" db:"status"`
	Priority    string         `json:"priority" db:"priority"`
	Category    string         `json:"category" db:"category"`
	Location    types.JSONText `json:"location,omitempty" db:"location"` // GeoJSON
	ReportedBy  uuid.UUID      `json:"reported_by" db:"reported_by"`
	AssignedTo  *uuid.UUID     `json:"assigned_to,omitempty" db:"assigned_to"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// IssueUpdate represents a status change appended to an issue's history
type IssueUpdate struct {
	ID        uuid.UUID `json:"id" db:"id"`
	IssueID   uuid.UUID `json:"issue_id" db:"issue_id"`
	Status    string    `json:"status" db:"status"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedBy uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IssueCreateRequest carries the reporter-supplied issue fields
type IssueCreateRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    string         `json:"priority"`
	Category    string         `json:"category"`
	Location    types.JSONText `json:"location,omitempty"`
}

// IssuePatchRequest carries the mutable issue fields; nil means unchanged
type IssuePatchRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *string         `json:"status,omitempty"`
	Priority    *string         `json:"priority,omitempty"`
	Category    *string         `json:"category,omitempty"`
	Location    *types.JSONText `json:"location,omitempty"`
	AssignedTo  *uuid.UUID      `json:"assigned_to,omitempty"`
}

// IssueUpdateRequest carries a new status-history entry
type IssueUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// IssueFilter narrows issue listings
type IssueFilter struct {
	Status     string
	ReportedBy *uuid.UUID
	Limit      int
	Offset     int
}
