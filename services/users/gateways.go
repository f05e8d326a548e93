package users

import (
	"context"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/agriconnect/agriconnect/services/users UserGW

// UserGW represents the user gateway interface. OTP delivery is handled
// by a downstream SMS consumer of the otp.requested subject.
type UserGW interface {
	PublishUserCreated(ctx context.Context, user *models.User) error
	PublishOTPRequested(ctx context.Context, otp *models.OTP) error
}
