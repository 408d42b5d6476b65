package repositories

import (
	"fmt"
	"strings"
)

// inPlaceholders renders "$start,$start+1,..." for IN clauses built from
// variable-length sets.
func inPlaceholders(start, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ",")
}

// likePattern wraps a value for a substring LIKE match against a jsonb
// column rendered as text.
func likePattern(value string) string {
	return "%\"" + value + "\"%"
}
