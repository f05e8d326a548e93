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

// UserGW implements the user gateway over NATS
type UserGW struct {
	client *natspkg.Client
}

// NewUserGW creates a new user gateway
func NewUserGW(client *natspkg.Client) *UserGW {
	return &UserGW{client: client}
}

// PublishUserCreated announces a first-contact registration
func (g *UserGW) PublishUserCreated(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user created event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectUserCreated, data); err != nil {
		return fmt.Errorf("failed to publish user created event: %w", err)
	}

	logger.Info("Published user created event",
		logger.String("user_id", user.ID.String()))
	return nil
}

// PublishOTPRequested hands a freshly issued code to the delivery
// pipeline. The SMS consumer of this subject owns actual delivery.
func (g *UserGW) PublishOTPRequested(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP requested event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectOTPRequested, data); err != nil {
		return fmt.Errorf("failed to publish OTP requested event: %w", err)
	}

	return nil
}
