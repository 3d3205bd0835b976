package util

import (
	"html"
	"strings"
	"unicode/utf8"
)

var charReplacementMap = map[string]string{
	"‘": "'", "’": "'", "“": "\"",
	"”": "\"", "–": "-", "—": "--", "…": "...",
	" ": " ",
}

// CleanText normalizes typographic characters and repairs invalid UTF-8 in
// text coming from external sources.
func CleanText(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	for bad, good := range charReplacementMap {
		s = strings.ReplaceAll(s, bad, good)
	}
	return strings.TrimSpace(s)
}

// StripHTML removes tags and unescapes entities. Good enough for the HTML
// bodies the StackOverflow API returns; not a sanitizer.
func StripHTML(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			sb.WriteRune(' ')
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(html.UnescapeString(sb.String())), " ")
}
