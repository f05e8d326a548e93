package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	jwtpkg "github.com/agriconnect/agriconnect/internal/pkg/jwt"
	"github.com/agriconnect/agriconnect/internal/pkg/logger"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/internal/utils"
)

// RequestOTP starts the login flow for a phone number: the user record is
// created on first contact (default role farmer), a fresh code is stored
// in the ledger overwriting any pending one, and the otp.requested event
// is published for out-of-band delivery.
func (u *UserUC) RequestOTP(ctx context.Context, phoneNumber string) (*models.OTPResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhoneNumber, err)
	}

	user, err := u.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}

		// First contact: auto-register with the default role. There is
		// no separate signup step.
		user = &models.User{
			PhoneNumber: phone,
			Role:        models.RoleFarmer,
			Language:    "en",
			IsActive:    true,
		}
		if err := u.userRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		if err := u.userGW.PublishUserCreated(ctx, user); err != nil {
			logger.Warn("Failed to publish user created event",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		}
	}

	now := time.Now()
	otp := &models.OTP{
		PhoneNumber: phone,
		Code:        u.generateCode(u.cfg.OTP.Length),
		UserID:      user.ID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(u.cfg.OTP.Expiration) * time.Minute),
	}

	if err := u.userRepo.CreateOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := u.userGW.PublishOTPRequested(ctx, otp); err != nil {
		logger.Warn("Failed to publish OTP requested event",
			logger.String("phone_number", phone),
			logger.Err(err))
	}

	logger.Info("Issued OTP",
		logger.String("phone_number", phone),
		logger.String("user_id", user.ID.String()))

	resp := &models.OTPResponse{Message: "OTP sent successfully"}
	if !u.cfg.App.IsProduction() {
		// Development affordance only; production responses never carry
		// the code.
		resp.Code = otp.Code
	}
	return resp, nil
}

// VerifyOTP exchanges a pending code for a bearer token. A code is
// consumed exactly once: on success the record is deleted before the
// token is minted, on mismatch the record's attempt counter is advanced
// and the record revoked once the limit is hit.
func (u *UserUC) VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhoneNumber, err)
	}

	otp, err := u.userRepo.GetOTP(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoPendingOTP) {
			return nil, apperrors.ErrInvalidCredential
		}
		return nil, fmt.Errorf("failed to load OTP: %w", err)
	}

	now := time.Now()
	if otp.Expired(now) {
		// The ledger TTL normally evicts these; the check also covers a
		// record read just past its expiry.
		if err := u.userRepo.DeleteOTP(ctx, phone); err != nil {
			logger.Warn("Failed to delete expired OTP", logger.String("phone_number", phone), logger.Err(err))
		}
		return nil, apperrors.ErrInvalidCredential
	}

	if otp.Code != code {
		otp.Attempts++
		if otp.Attempts >= u.cfg.OTP.MaxAttempts {
			if err := u.userRepo.DeleteOTP(ctx, phone); err != nil {
				logger.Warn("Failed to revoke OTP", logger.String("phone_number", phone), logger.Err(err))
			}
			logger.Warn("OTP revoked after repeated failed attempts",
				logger.String("phone_number", phone),
				logger.Int("attempts", otp.Attempts))
			return nil, apperrors.ErrTooManyAttempts
		}
		if err := u.userRepo.UpdateOTP(ctx, otp); err != nil {
			logger.Warn("Failed to record OTP attempt", logger.String("phone_number", phone), logger.Err(err))
		}
		return nil, apperrors.ErrInvalidCredential
	}

	// Single use: consume before minting
	if err := u.userRepo.DeleteOTP(ctx, phone); err != nil {
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}

	user, err := u.userRepo.GetUserByID(ctx, otp.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// OTP issuance always has an associated user, so this is a
			// server-side invariant violation, not a credential fault.
			logger.Error("User vanished after OTP consumption",
				logger.String("phone_number", phone),
				logger.String("user_id", otp.UserID.String()))
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return u.mintToken(user)
}

// PasswordLogin is the legacy OAuth2-form login. The password is a
// placeholder and not verified; the account must already exist.
func (u *UserUC) PasswordLogin(ctx context.Context, phoneNumber, _ string) (*models.AuthResponse, error) {
	phone, err := utils.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return u.mintToken(user)
}

// Authenticate resolves a bearer token to an active user record. Token
// validity alone is not enough: the account's active flag is re-checked
// on every call since issued tokens cannot be revoked.
func (u *UserUC) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := jwtpkg.ValidateToken(token, u.cfg.JWT.Secret)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	userID, err := claims.SubjectID()
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (u *UserUC) mintToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.PhoneNumber, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		TokenType: "bearer",
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}
