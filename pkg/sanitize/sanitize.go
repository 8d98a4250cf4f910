// Package sanitize strips markup from user supplied text before it is
// stored. Zone names, notes and need labels end up inside map popups on
// every client, so nothing stored may carry HTML.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all tags, unescapes the entities bluemonday emits and trims
// surrounding whitespace.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Labels sanitizes every label and drops the ones left blank. The result is
// never nil.
func Labels(in []string) []string {
	out := make([]string, 0, len(in))
	for _, l := range in {
		if l = Text(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
