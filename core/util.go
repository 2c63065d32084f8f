package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ContainsFold reports whether `s` contains `substr`, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MatchAny reports whether one of `fields` contains the cleaned `query`, ignoring case.
// An empty query matches everything.
func MatchAny(query string, fields ...string) bool {
	query = CleanString(query, true /* lower */)
	if query == "" {
		return true
	}
	for _, fld := range fields {
		if strings.Contains(strings.ToLower(fld), query) {
			return true
		}
	}
	return false
}
