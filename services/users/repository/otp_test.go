package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/database"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
)

func setupOTPRepo(t *testing.T) (*UserRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{
		OTP: models.OTPConfig{Length: 6, Expiration: 5, MaxAttempts: 3},
	}
	return NewUserRepo(cfg, nil, &database.RedisClient{Client: client}), mr
}

func newOTP(phone, code string) *models.OTP {
	now := time.Now()
	return &models.OTP{
		PhoneNumber: phone,
		Code:        code,
		UserID:      uuid.New(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(5 * time.Minute),
	}
}

func TestCreateAndGetOTP(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	otp := newOTP("9999999999", "123456")
	require.NoError(t, repo.CreateOTP(ctx, otp))

	got, err := repo.GetOTP(ctx, "9999999999")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)
	assert.Equal(t, otp.UserID, got.UserID)
	assert.Zero(t, got.Attempts)

	// The key carries the record's expiry as TTL
	ttl := mr.TTL("auth:otp:9999999999")
	assert.Greater(t, ttl, 4*time.Minute)
	assert.LessOrEqual(t, ttl, 5*time.Minute)
}

func TestCreateOTP_OverwritesPendingCode(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOTP(ctx, newOTP("9999999999", "123456")))
	require.NoError(t, repo.CreateOTP(ctx, newOTP("9999999999", "654321")))

	got, err := repo.GetOTP(ctx, "9999999999")
	require.NoError(t, err)
	assert.Equal(t, "654321", got.Code)
}

func TestGetOTP_NoPendingCode(t *testing.T) {
	repo, _ := setupOTPRepo(t)

	_, err := repo.GetOTP(context.Background(), "9999999999")
	assert.ErrorIs(t, err, apperrors.ErrNoPendingOTP)
}

func TestGetOTP_ExpiredCodeEvicted(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOTP(ctx, newOTP("9999999999", "123456")))

	mr.FastForward(6 * time.Minute)

	_, err := repo.GetOTP(ctx, "9999999999")
	assert.ErrorIs(t, err, apperrors.ErrNoPendingOTP)
}

func TestUpdateOTP_PreservesRemainingTTL(t *testing.T) {
	repo, mr := setupOTPRepo(t)
	ctx := context.Background()

	otp := newOTP("9999999999", "123456")
	require.NoError(t, repo.CreateOTP(ctx, otp))

	mr.FastForward(2 * time.Minute)

	otp.Attempts = 1
	require.NoError(t, repo.UpdateOTP(ctx, otp))

	got, err := repo.GetOTP(ctx, "9999999999")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Attempts)

	// Recording an attempt must not extend the code's lifetime
	ttl := mr.TTL("auth:otp:9999999999")
	assert.LessOrEqual(t, ttl, 3*time.Minute)
}

func TestUpdateOTP_GoneRecord(t *testing.T) {
	repo, _ := setupOTPRepo(t)

	err := repo.UpdateOTP(context.Background(), newOTP("9999999999", "123456"))
	assert.ErrorIs(t, err, apperrors.ErrNoPendingOTP)
}

func TestDeleteOTP(t *testing.T) {
	repo, _ := setupOTPRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateOTP(ctx, newOTP("9999999999", "123456")))
	require.NoError(t, repo.DeleteOTP(ctx, "9999999999"))

	_, err := repo.GetOTP(ctx, "9999999999")
	assert.ErrorIs(t, err, apperrors.ErrNoPendingOTP)

	// Deleting an absent key is not an error
	assert.NoError(t, repo.DeleteOTP(ctx, "9999999999"))
}
