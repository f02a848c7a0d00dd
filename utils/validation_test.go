package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"e164", "+14155552671", true},
		{"no plus", "14155552671", true},
		{"formatted", "+1 (415) 555-2671", true},
		{"leading zero", "0415555267", false},
		{"letters", "+1415call", false},
		{"too long", "+1234567890123456", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePhone(tt.phone))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain", "pat@example.com", true},
		{"padded", "  pat@example.com  ", true},
		{"no domain dot", "pat@example", false},
		{"no at", "pat.example.com", false},
		{"embedded space", "pat smith@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateEmail(tt.email))
		})
	}
}
