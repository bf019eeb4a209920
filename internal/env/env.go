// Package env provides small helpers for reading configuration from the
// process environment.
package env

import (
	"os"
	"strings"
)

// GetenvOrDefault returns the value of the environment variable, or the
// default when the variable is unset or blank.
func GetenvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

// GetenvBool returns the boolean value of the environment variable, or the
// default when the variable is unset or not a recognized boolean literal.
func GetenvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
