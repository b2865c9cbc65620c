package openapi

import (
	"regexp"
	"strings"
	"unicode"
)

var nameSeparators = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler converts a property name into a human-friendly label. It
// splits on underscores, dashes, and camelCase boundaries; each separator
// chunk becomes a sentence-cased segment.
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	var segments []string
	for _, chunk := range nameSeparators.Split(name, -1) {
		if chunk == "" {
			continue
		}
		segments = append(segments, sentenceCase(splitCamel(chunk)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func splitCamel(input string) string {
	runes := []rune(input)
	var out strings.Builder
	for i, r := range runes {
		if i > 0 && camelBoundary(runes[i-1], r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func camelBoundary(prev, cur rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	}
	return false
}

func sentenceCase(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(strings.ToLower(text))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
