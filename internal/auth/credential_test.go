package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPassword(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      bool
	}{
		{"equal", "secret", "secret", true},
		{"shorter", "secre", "secret", false},
		{"longer", "secrets", "secret", false},
		{"last byte differs", "secreT", "secret", false},
		{"first byte differs", "Secret", "secret", false},
		{"empty submitted", "", "secret", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.submitted, tt.expected))
		})
	}
}
