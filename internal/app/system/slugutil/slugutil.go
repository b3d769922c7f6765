// Package slugutil derives URL-safe handles from display names.
package slugutil

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Generate turns a display name into a slug: folded to lowercase ASCII,
// runs of non-alphanumerics collapsed to single hyphens, edge hyphens
// trimmed. "Acme Corp." becomes "acme-corp".
func Generate(name string) string {
	folded := text.Fold(name)

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
