// Package paths maps page slugs to output locations and computes the
// relative links between them. Pages are written as a directory per
// slug (clean URLs), so the correct relative form of every internal
// link depends on the nesting depth of both endpoints and must be
// computed per (source, target) pair.
package paths

import (
	"path"
	"strings"
)

// RootSlug is the canonical slug of the site's home page.
const RootSlug = ""

// rootSynonyms are raw identifiers that all normalize to the root slug.
var rootSynonyms = map[string]bool{
	"":      true,
	"/":     true,
	"index": true,
	"home":  true,
}

// Normalize canonicalizes a raw page identifier. Leading and trailing
// whitespace and slashes are stripped; the root synonyms ("", "/",
// "index", "home") collapse to RootSlug. Case is preserved.
func Normalize(raw string) string {
	slug := strings.TrimSpace(raw)
	if rootSynonyms[slug] {
		return RootSlug
	}
	return strings.Trim(slug, "/")
}

// OutputPath returns the slash-separated output location for a slug:
// index.html at the root for the root slug, <slug>/index.html for
// everything else.
func OutputPath(slug string) string {
	if slug == RootSlug {
		return "index.html"
	}
	return path.Join(slug, "index.html")
}

// Relative computes the relative path from the directory containing
// from to the target to. Both arguments are slash-separated output
// paths as produced by OutputPath. The result is correct for any
// nesting depth on either side.
func Relative(from, to string) string {
	fromDir := path.Dir(path.Clean(from))
	target := path.Clean(to)
	if fromDir == "." {
		return target
	}

	fromParts := strings.Split(fromDir, "/")
	toParts := strings.Split(target, "/")

	// Drop the shared prefix.
	shared := 0
	for shared < len(fromParts) && shared < len(toParts) && fromParts[shared] == toParts[shared] {
		shared++
	}

	var b []string
	for i := shared; i < len(fromParts); i++ {
		b = append(b, "..")
	}
	b = append(b, toParts[shared:]...)
	if len(b) == 0 {
		return "."
	}
	return strings.Join(b, "/")
}

// ResolveCTA resolves a call-to-action target. Absolute URLs
// ("http..."), mail references ("mailto:") and fragment anchors ("#")
// pass through verbatim. Anything else is treated as a page slug: if
// it is known, the relative link from the current output path to that
// page is returned; otherwise the raw value is returned unchanged so a
// broken link renders instead of aborting the build.
func ResolveCTA(raw string, known map[string]bool, from string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http") || strings.HasPrefix(raw, "mailto:") || strings.HasPrefix(raw, "#") {
		return raw
	}
	slug := Normalize(raw)
	if known[slug] {
		return Relative(from, OutputPath(slug))
	}
	return raw
}
