// Package apperrors defines the sentinel errors shared across services.
// Handlers translate these with errors.Is into HTTP responses; anything
// not listed here is treated as an internal server error.
package apperrors

import "errors"

var (
	// ErrInvalidPhoneNumber rejects input that does not normalize to a
	// 10-15 digit phone number.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrNoPendingOTP indicates no live OTP record exists for the phone
	// number. Surfaced to callers as ErrInvalidCredential.
	ErrNoPendingOTP = errors.New("no pending OTP")

	// ErrInvalidCredential covers every OTP rejection: no pending code,
	// expired code, or a mismatch. Callers get a single uniform failure
	// so the response does not reveal which case occurred.
	ErrInvalidCredential = errors.New("invalid or expired OTP")

	// ErrTooManyAttempts is returned once a pending OTP has been revoked
	// after repeated failed verifications.
	ErrTooManyAttempts = errors.New("too many failed attempts, request a new OTP")

	// ErrUnauthorized covers bad, expired or missing tokens and inactive
	// accounts.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrUserNotFound indicates a referenced user record is missing.
	ErrUserNotFound = errors.New("user not found")

	ErrIssueNotFound  = errors.New("issue not found")
	ErrSchemeNotFound = errors.New("scheme not found")
	ErrModuleNotFound = errors.New("training module not found")
	ErrStoryNotFound  = errors.New("success story not found")

	// ErrForbidden indicates the caller's role does not permit the operation.
	ErrForbidden = errors.New("insufficient role for this operation")

	// ErrInvalidInput rejects request payloads that fail domain validation.
	ErrInvalidInput = errors.New("invalid input")
)
