package site

import (
	"regexp"
	"strings"
)

// Content files carry newlines as the literal two-character sequence
// "\n"; paragraphs are separated by one or more blank lines.
var paragraphSep = regexp.MustCompile(`\n\s*\n`)

// SplitParagraphs expands the literal newline escape and splits the
// text into trimmed paragraphs. Runs of blank lines count as a single
// separator and empty paragraphs are dropped, which makes the split
// idempotent over rejoined output.
func SplitParagraphs(text string) []string {
	normalized := strings.TrimSpace(strings.ReplaceAll(text, `\n`, "\n"))
	if normalized == "" {
		return nil
	}
	var out []string
	for _, chunk := range paragraphSep.Split(normalized, -1) {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// SplitBullets splits a pipe-delimited list field into trimmed items,
// dropping empty segments.
func SplitBullets(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(text, "|") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
