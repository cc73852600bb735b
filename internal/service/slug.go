package service

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a title: lower-cased, with every run
// of non-alphanumeric characters collapsed into a single hyphen and no
// leading or trailing hyphens. The derivation is deterministic, so a job
// slug can be re-derived whenever its title changes.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
