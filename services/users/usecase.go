package users

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/agriconnect/agriconnect/services/users UserUC

// UserUC represents the user usecase interface: the OTP login protocol,
// token authentication and user profile management.
type UserUC interface {
	// OTP login flow
	RequestOTP(ctx context.Context, phoneNumber string) (*models.OTPResponse, error)
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error)

	// Legacy OAuth2-form login; password is a placeholder and not verified
	PasswordLogin(ctx context.Context, phoneNumber, password string) (*models.AuthResponse, error)

	// Token-based identity resolution for protected requests
	Authenticate(ctx context.Context, token string) (*models.User, error)

	// User management
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *models.UserUpdateRequest) (*models.User, error)
	UpsertFarmerProfile(ctx context.Context, userID uuid.UUID, profile *models.FarmerProfile) error
}
