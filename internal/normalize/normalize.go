// Package normalize provides pure string normalization utilities used by the
// extraction pipeline.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// quoteStripper matches the decorative quote characters German sites wrap
// credited-as names in.
var quoteStripper = strings.NewReplacer("„", "", "“", "", "”", "", "«", "", "»", "")

// CleanText strips decorative quote characters. Empty input passes through.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return quoteStripper.Replace(s)
}

// CapitalizeFirst upper-cases the first character of s.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// KebabToTitle converts a kebab-case name into title case:
// "release-group" -> "Release Group".
func KebabToTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		parts[i] = CapitalizeFirst(p)
	}
	return strings.Join(parts, " ")
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseWhitespace replaces runs of whitespace (including NBSP) with a
// single space and trims the result.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

var nameFolder = cases.Fold()

// NameKey canonicalizes a person name for deduplication: whitespace is
// collapsed and the result is Unicode case-folded, so "Hans  Müller" and
// "hans müller" collide.
func NameKey(name string) string {
	return nameFolder.String(CollapseWhitespace(name))
}
