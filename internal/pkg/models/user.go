package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// User roles. New users always start as farmers; roles are only
// changed by an administrator, never by the auth flow itself.
const (
	RoleFarmer   = "farmer"
	RoleVLE      = "vle"
	RoleNGOAdmin = "ngo_admin"
	RoleExpert   = "expert"
)

// User represents a platform user identified by phone number
type User struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	PhoneNumber   string         `json:"phone_number" db:"phone_number"`
	Name          string         `json:"name" db:"name"`
	Role          string         `json:"role" db:"role"`
	Language      string         `json:"language" db:"language"`
	IsActive      bool           `json:"is_active" db:"is_active"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
	FarmerProfile *FarmerProfile `json:"farmer_profile,omitempty" db:"-"`
}

// FarmerProfile holds the optional extension record for farmer users
type FarmerProfile struct {
	UserID   uuid.UUID      `json:"user_id" db:"user_id"`
	Address  string         `json:"address" db:"address"`
	Village  string         `json:"village" db:"village"`
	District string         `json:"district" db:"district"`
	State    string         `json:"state" db:"state"`
	Pincode  string         `json:"pincode" db:"pincode"`
	LandArea float64        `json:"land_area" db:"land_area"` // in acres
	Crops    types.JSONText `json:"crops" db:"crops"`
}

// UserUpdateRequest represents the mutable user fields
type UserUpdateRequest struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}
