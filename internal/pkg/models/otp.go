package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP represents a pending one-time passcode for a phone number.
// At most one record is live per phone number; a new request
// overwrites the previous one.
type OTP struct {
	PhoneNumber string    `json:"phone_number"`
	Code        string    `json:"code"`
	UserID      uuid.UUID `json:"user_id"`
	Attempts    int       `json:"attempts"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the code has passed its expiry window
func (o *OTP) Expired(now time.Time) bool {
	return !o.ExpiresAt.IsZero() && !now.Before(o.ExpiresAt)
}

// OTPRequest represents a request to start the OTP login flow
type OTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// OTPVerifyRequest represents a request to exchange an OTP for a token
type OTPVerifyRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
}

// OTPResponse confirms OTP issuance. Code is only populated outside
// production builds.
type OTPResponse struct {
	Message string `json:"message"`
	Code    string `json:"otp,omitempty"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
