package constants

// Redis key formats
const (
	KeyAuthOTP = "auth:otp:%s" // Format: auth:otp:{phone_number}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)
