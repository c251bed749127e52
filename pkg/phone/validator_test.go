package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		phone     string
		region    string
		wantValid bool
		wantE164  string
		wantError bool
	}{
		{
			name:      "albanian mobile with country code",
			phone:     "+355 68 227 7167",
			region:    "AL",
			wantValid: true,
			wantE164:  "+355682277167",
		},
		{
			name:      "albanian mobile without country code",
			phone:     "068 227 7167",
			region:    "AL",
			wantValid: true,
			wantE164:  "+355682277167",
		},
		{
			name:      "region defaults to AL",
			phone:     "068 227 7167",
			region:    "",
			wantValid: true,
			wantE164:  "+355682277167",
		},
		{
			name:      "foreign number with prefix overrides region",
			phone:     "+1 (202) 456-1111",
			region:    "AL",
			wantValid: true,
			wantE164:  "+12024561111",
		},
		{
			name:      "too short",
			phone:     "123",
			region:    "AL",
			wantValid: false,
		},
		{
			name:      "empty",
			phone:     "",
			region:    "AL",
			wantError: true,
		},
		{
			name:      "garbage",
			phone:     "not-a-number",
			region:    "AL",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(tt.phone, tt.region)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.IsValid)
			if tt.wantE164 != "" {
				assert.Equal(t, tt.wantE164, result.E164Format)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("+355682277167", "AL"))
	assert.False(t, IsValid("123", "AL"))
	assert.False(t, IsValid("", "AL"))
}

func TestNormalizeForSMS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+355 68 227-7167", "+355682277167"},
		{"(068) 227 7167", "+0682277167"},
		{"355682277167", "+355682277167"},
		{"+355682277167", "+355682277167"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeForSMS(tt.in), tt.in)
	}
}
