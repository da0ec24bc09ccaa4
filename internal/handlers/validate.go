package handlers

import "strings"

// ValidPhone reports whether s is a valid mobile number after stripping
// separators: exactly 10 digits, first digit 6-9.
func ValidPhone(s string) bool {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) != 10 {
		return false
	}
	return d[0] >= '6' && d[0] <= '9'
}

// firstMissing returns the name of the first empty required field, or "".
// Required-field checks run before any store call so a rejected form
// never reaches the database.
func firstMissing(fields map[string]string, order ...string) string {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return name
		}
	}
	return ""
}
