package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips unsafe markup from free text such as bios, captions and comments.
// The result is plain text: entities escaped by the policy are decoded again.
func Sanitize(input string) string {
	return html.UnescapeString(sanitizer.Sanitize(input))
}
