package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_Valid(t *testing.T) {
	tests := []struct {
		name     string
		token    *Token
		expected bool
	}{
		{name: "nil token", token: nil, expected: false},
		{name: "empty token", token: &Token{}, expected: false},
		{name: "missing access token", token: &Token{InstanceURL: "https://na1.example.com"}, expected: false},
		{name: "missing instance url", token: &Token{AccessToken: "00Dxx!t"}, expected: false},
		{
			name:     "complete token",
			token:    &Token{InstanceURL: "https://na1.example.com", AccessToken: "00Dxx!t"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.Valid())
		})
	}
}
