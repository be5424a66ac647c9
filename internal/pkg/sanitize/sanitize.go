package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips all markup from user-entered text. Entities are decoded to a
// fixed point before the policy runs, so entity-encoded markup cannot ride
// through it and reappear as live tags on the way out. The trailing decode
// only undoes the policy's own escaping of literal characters.
func Text(s string) string {
	for {
		decoded := html.UnescapeString(s)
		if decoded == s {
			break
		}
		s = decoded
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
