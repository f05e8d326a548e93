package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/constants"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// CreateOTP stores an OTP record in Redis keyed by phone number with the
// record's own expiry as TTL. A plain SET gives last-write-wins: a new
// request atomically replaces any pending code for the number.
func (r *UserRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Duration(r.cfg.OTP.Expiration) * time.Minute
	}

	key := fmt.Sprintf(constants.KeyAuthOTP, otp.PhoneNumber)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// GetOTP retrieves the live OTP record for a phone number
func (r *UserRepo) GetOTP(ctx context.Context, phoneNumber string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, phoneNumber)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNoPendingOTP
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// UpdateOTP rewrites an OTP record preserving its remaining TTL. Used to
// advance the failed-attempt counter without extending the code's life.
func (r *UserRepo) UpdateOTP(ctx context.Context, otp *models.OTP) error {
	key := fmt.Sprintf(constants.KeyAuthOTP, otp.PhoneNumber)

	ttl, err := r.redisClient.TTL(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read OTP TTL: %w", err)
	}
	if ttl <= 0 {
		// Evicted between read and write; nothing left to update
		return apperrors.ErrNoPendingOTP
	}

	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// DeleteOTP removes the OTP record for a phone number
func (r *UserRepo) DeleteOTP(ctx context.Context, phoneNumber string) error {
	key := fmt.Sprintf(constants.KeyAuthOTP, phoneNumber)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}
	return nil
}
