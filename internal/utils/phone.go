package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// NormalizePhoneNumber validates a phone number and returns its canonical
// form: digits only, 10 to 15 characters. Separators and a leading country
// code marker are tolerated on input.
func NormalizePhoneNumber(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.TrimPrefix(stripped, "+")

	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number: must be 10-15 digits")
	}

	return stripped, nil
}
