package paths

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)

	// Decompose, strip combining marks, recompose. Turns "Büro" into
	// "Buro" before the ASCII filter drops everything else.
	foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify derives a URL-safe, lower-case slug from free text such as a
// blog post's filename stem. Diacritics are folded to their base
// letters, remaining non-alphanumeric runes are dropped, and runs of
// whitespace become single hyphens. An input that reduces to nothing
// yields "post" so every post gets a routable output path.
func Slugify(raw string) string {
	folded, _, err := transform.String(foldMarks, raw)
	if err != nil {
		folded = raw
	}
	cleaned := slugDisallowed.ReplaceAllString(folded, "")
	cleaned = slugWhitespace.ReplaceAllString(strings.TrimSpace(cleaned), "-")
	cleaned = strings.ToLower(cleaned)
	if cleaned == "" {
		return "post"
	}
	return cleaned
}
