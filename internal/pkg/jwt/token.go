package jwt

import (
	"fmt"
	"time"

	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Claims represents registered JWT claims plus custom fields. The token
// subject is the user identifier.
type Claims struct {
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed HS256 token for the given user. The
// expiry window comes from configuration; a non-positive window falls
// back to 15 minutes.
func GenerateToken(userID uuid.UUID, phoneNumber, role string, cfg *models.Config) (string, int64, error) {
	ttl := time.Duration(cfg.JWT.Expiration) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	now := time.Now()
	expirationTime := now.Add(ttl)

	claims := Claims{
		PhoneNumber: phoneNumber,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken verifies the signature and expiry of a token and returns
// its claims. Signature mismatch, malformed payload and expiry all
// surface as a single error; callers do not act differently per cause.
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// SubjectID parses the token subject as a user identifier
func (c *Claims) SubjectID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject claim: %w", err)
	}
	return id, nil
}
