package users

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/agriconnect/agriconnect/services/users UserRepo

// UserRepo represents the user repository interface: durable user records
// in Postgres plus the transient OTP ledger in Redis. At most one OTP is
// live per phone number; CreateOTP overwrites any pending record.
type UserRepo interface {
	// Credential store
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	UpsertFarmerProfile(ctx context.Context, profile *models.FarmerProfile) error

	// OTP ledger
	CreateOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, phoneNumber string) (*models.OTP, error)
	UpdateOTP(ctx context.Context, otp *models.OTP) error
	DeleteOTP(ctx context.Context, phoneNumber string) error
}
