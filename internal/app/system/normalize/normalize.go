// Package normalize centralizes input normalization so stores and handlers
// agree on what "empty" means.
package normalize

import "strings"

// Name trims surrounding whitespace and collapses inner runs of spaces.
// Case is preserved.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Field trims a free-form input field.
func Field(s string) string {
	return strings.TrimSpace(s)
}
