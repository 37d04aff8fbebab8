package sqlite

import "strings"

// IsUniqueViolation reports whether err is a SQLite uniqueness conflict.
// The driver exposes no structured constraint info, so callers pattern-match
// the error text.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
