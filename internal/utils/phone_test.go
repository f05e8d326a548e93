package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain ten digits", input: "9999999999", want: "9999999999"},
		{name: "with country code marker", input: "+919876543210", want: "919876543210"},
		{name: "with separators", input: "98765-432 10", want: "9876543210"},
		{name: "fifteen digits", input: "123456789012345", want: "123456789012345"},
		{name: "too short", input: "123456789", wantErr: true},
		{name: "too long", input: "1234567890123456", wantErr: true},
		{name: "letters", input: "98765abc43", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateOTPCode(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code := GenerateOTPCode(length)
		assert.Len(t, code, length)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "expected digit, got %q", r)
		}
	}

	// Zero and negative lengths fall back to six digits
	assert.Len(t, GenerateOTPCode(0), 6)
	assert.Len(t, GenerateOTPCode(-1), 6)
}
