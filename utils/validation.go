// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// E.164-ish: optional + prefix, leading nonzero digit, 2-15 digits total.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidatePhone reports whether the number looks like a dialable
// international phone number after stripping common formatting.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phonePattern.MatchString(cleaned)
}

// ValidateEmail does a light shape check before dispatching invoice email
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
