package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// TrainingModule represents an educational content unit
type TrainingModule struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	Title           string         `json:"title" db:"title"`
	Description     string         `json:"description" db:"description"`
	Content         types.JSONText `json:"content,omitempty" db:"content"`
	DurationMinutes int            `json:"duration_minutes" db:"duration_minutes"`
	Language        string         `json:"language" db:"language"`
	IsActive        bool           `json:"is_active" db:"is_active"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// SuccessStory represents a featured farmer outcome report
type SuccessStory struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Description  string         `json:"description" db:"description"`
	FarmerID     uuid.UUID      `json:"farmer_id" db:"farmer_id"`
	Location     types.JSONText `json:"location,omitempty" db:"location"` // GeoJSON
	BeforeImages types.JSONText `json:"before_images,omitempty" db:"before_images"`
	AfterImages  types.JSONText `json:"after_images,omitempty" db:"after_images"`
	IsFeatured   bool           `json:"is_featured" db:"is_featured"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}
