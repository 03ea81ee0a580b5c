// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mergepub

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// leadingNumberingRe matches list-style prefixes such as "12. " or "(3) ".
	leadingNumberingRe = regexp.MustCompile(`^\s*(?:\(\d+\)|\d+[.)])\s*`)

	// trailingYearRe matches a year annotation at the end of a title:
	// parenthesized ("(2021)"), dash-attached ("- 2021"), or a bare
	// trailing year token.
	trailingYearRe = regexp.MustCompile(`\s*[-–—(]*\s*\b(?:19|20)\d{2}\b\)?\s*$`)
)

// NormalizeTitle reduces a raw title to its comparison key: lowercased,
// stripped of leading numbering and trailing year markers, with whitespace
// runs collapsed. The key is used only for equality; the original string is
// kept separately for display. Normalizing an already-normalized title
// returns it unchanged.
func NormalizeTitle(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	for {
		stripped := leadingNumberingRe.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}
	for {
		stripped := trailingYearRe.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}

	return strings.Join(strings.Fields(s), " ")
}

// inflationSymbols are the characters that appear alone in source exports
// as count-padding placeholder rows.
const inflationSymbols = "-–—_•·▪▫◦‣⁃.,;:!?"

// placeholderWords are whole-cell values that mark an empty entry rather
// than a publication.
var placeholderWords = map[string]bool{
	"n/a":       true,
	"na":        true,
	"none":      true,
	"null":      true,
	"undefined": true,
}

// IsMeaningful reports whether a normalized title describes a real
// publication. Titles shorter than three characters, titles composed
// entirely of placeholder symbols and whitespace, and titles with no
// alphabetic content at all are inflation entries; they never reach the
// deduplicated output or the statistics.
func IsMeaningful(normalized string) bool {
	s := strings.TrimSpace(normalized)
	if utf8.RuneCountInString(s) < 3 {
		return false
	}
	if placeholderWords[s] {
		return false
	}
	for _, r := range s {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(inflationSymbols, r) {
			continue
		}
		return true
	}
	return false
}
