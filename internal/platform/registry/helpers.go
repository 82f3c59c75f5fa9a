// internal/platform/registry/helpers.go
package registry

import (
	"fmt"
	"strings"
)

// Validation helpers para los campos de cada tipo registrado.

// ValidateRequiredString validates that a required string field is not empty.
// Returns an error if the value is empty or only whitespace.
func ValidateRequiredString(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required and cannot be empty", fieldName)
	}
	return nil
}

// ValidateIntRange validates that an int field is within a specified range [min, max].
// Returns an error if the value is outside the range.
func ValidateIntRange(fieldName string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", fieldName, min, max, value)
	}
	return nil
}

// ValidateEnum validates that a string value is one of the allowed options.
// Returns an error if the value is not in the allowed list.
func ValidateEnum(fieldName, value string, allowed []string) error {
	for _, option := range allowed {
		if value == option {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %v, got %q", fieldName, allowed, value)
}

// ValidateEach aplica check a cada valor y devuelve el primer error.
func ValidateEach(fieldName string, values []string, check func(string) bool) error {
	for i, v := range values {
		if !check(v) {
			return fmt.Errorf("%s[%d] is invalid: %q", fieldName, i, v)
		}
	}
	return nil
}
