package utils

import "time"

// FormatUnixSeconds renders an epoch-seconds value for API responses.
// Returns "" for zero/negative values so callers can omit the field.
func FormatUnixSeconds(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
