package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Titleize turns a slug like "case-studies" into "Case Studies".
func Titleize(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// Slugify produces the URL-safe alternate key used for posts,
// categories and pages: lowercase, hyphen-separated, ASCII
// alphanumerics only, with runs of separators collapsed.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
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
