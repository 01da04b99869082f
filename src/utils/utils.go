package utils

import "github.com/google/uuid"

// GenerateLicenseKey mints a fresh opaque license key.
func GenerateLicenseKey() string {
	return uuid.New().String()
}
