package utils

import "regexp"

// Basic validation: reject statements containing destructive keywords.
// Only consulted when the read-only guard is enabled; by default the
// generated SQL is executed as-is.
var forbiddenKeywords = regexp.MustCompile(`(?i)\b(DROP|DELETE|UPDATE|INSERT|ALTER|TRUNCATE|CREATE|GRANT|REVOKE)\b`)

func ValidateSQL(query string) bool {
	return !forbiddenKeywords.MatchString(query)
}
