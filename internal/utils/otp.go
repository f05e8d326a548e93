package utils

import (
	"math/rand"
	"strings"
)

// GenerateOTPCode returns a random numeric code of the given length.
// These codes are short-lived and single-use; math/rand keeps parity
// with the SMS gateway's own code format.
func GenerateOTPCode(length int) string {
	if length <= 0 {
		length = 6
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}
