// Package htmlsanitize strips unsafe HTML from user-provided text before it
// is stored. Feedback messages may carry simple formatting; scripts and
// event handlers must not survive.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with everything outside the UGC allowlist removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
