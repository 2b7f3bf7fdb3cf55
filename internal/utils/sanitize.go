package utils

import (
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var commentPolicy = bluemonday.StrictPolicy()

// SanitizeCommentText strips any markup from user-submitted comment text
// and trims surrounding whitespace. The policy entity-escapes what it
// keeps, so the output is unescaped again; plain text like "fish & chips"
// must round-trip unchanged.
func SanitizeCommentText(text string) string {
	return strings.TrimSpace(html.UnescapeString(commentPolicy.Sanitize(text)))
}

// UploadFileName builds a globally-unique storage name from a random id
// plus the sanitized item name. Anything outside [a-z0-9] collapses to a
// single dash.
func UploadFileName(itemName string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(itemName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		return uuid.NewString()
	}
	return uuid.NewString() + "-" + name
}
