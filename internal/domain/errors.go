package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no record matches the requested IATA code.
var ErrNotFound = errors.New("airport not found")

// ValidationError reports a malformed record or malformed caller input.
// Code may be empty when the dataset as a whole is invalid.
type ValidationError struct {
	Code   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("invalid dataset: %s", e.Reason)
	}
	return fmt.Sprintf("invalid record %q: %s", e.Code, e.Reason)
}

// NormalizeCode canonicalizes a user-supplied IATA code. Lookups are
// case-insensitive, matching the original reference data behaviour.
func NormalizeCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if !ValidCode(c) {
		return "", &ValidationError{Code: code, Reason: "IATA code must be exactly 3 letters"}
	}
	return c, nil
}

// ValidCode reports whether code is exactly 3 uppercase letters.
func ValidCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
