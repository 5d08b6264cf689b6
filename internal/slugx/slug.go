// Package slugx derives URL-safe slugs from free-form titles.
package slugx

import "strings"

// Make lowercases the title, collapses every run of characters outside
// [a-z0-9] into a single hyphen, and trims leading and trailing hyphens.
// The transform is lossy but deterministic: the same title always yields
// the same slug.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	prevHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
