// Package sanitize strips markup from user-supplied text before it is
// stored or echoed back to clients.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from free-form input such as ticket titles,
// descriptions, and history notes.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
