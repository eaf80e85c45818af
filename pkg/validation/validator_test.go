package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateStringLength(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		minLength int
		maxLength int
		wantErr   bool
	}{
		{
			name:      "valid length",
			value:     "abcdef",
			minLength: 1,
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "too short",
			value:     "ab",
			minLength: 3,
			maxLength: 10,
			wantErr:   true,
		},
		{
			name:      "too long",
			value:     "abcdefghijk",
			minLength: 1,
			maxLength: 10,
			wantErr:   true,
		},
		{
			name:      "exact boundaries",
			value:     "abc",
			minLength: 3,
			maxLength: 3,
			wantErr:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStringLength(tc.value, tc.minLength, tc.maxLength)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	// valid email
	err := ValidateEmail("user@example.com")
	require.NoError(t, err)

	// too short
	err = ValidateEmail("a@b")
	require.Error(t, err)

	// not an email address
	err = ValidateEmail("not-an-email-address")
	require.Error(t, err)
}
