// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var handleRegex = regexp.MustCompile(`^[a-z0-9-]{3,30}$`)

var reservedHandles = map[string]struct{}{
	"admin":     {},
	"api":       {},
	"auth":      {},
	"app":       {},
	"dashboard": {},
	"editor":    {},
	"settings":  {},
	"profile":   {},
	"profiles":  {},
	"users":     {},
	"themes":    {},
	"stats":     {},
	"preview":   {},
	"ws":        {},
	"swagger":   {},
	"metrics":   {},
	"health":    {},
	"login":     {},
	"signup":    {},
}

// ValidateHandle validates public profile handle format and reserved names.
func ValidateHandle(handle string) error {
	if !handleRegex.MatchString(handle) {
		return fmt.Errorf("handle must be 3-30 characters and contain only lowercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(handle, "-") || strings.HasSuffix(handle, "-") {
		return fmt.Errorf("handle cannot start or end with a hyphen")
	}

	if _, exists := reservedHandles[handle]; exists {
		return fmt.Errorf("handle is reserved")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}
