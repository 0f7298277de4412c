package helpers

import (
	"os"
	"strings"
)

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// FirstEnv returns the first non-blank value among keys, or fallback.
func FirstEnv(fallback string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(GetEnv(key, "")); value != "" {
			return value
		}
	}
	return fallback
}

func Contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
