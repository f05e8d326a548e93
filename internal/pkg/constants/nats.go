package constants

// NATS subjects published by the API service. OTP delivery itself is
// handled by a downstream consumer (SMS gateway), not by this service.
const (
	SubjectUserCreated  = "user.created"
	SubjectOTPRequested = "auth.otp.requested"
	SubjectIssueCreated = "issue.created"
)
