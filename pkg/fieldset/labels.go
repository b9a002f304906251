package fieldset

import (
	"strings"
	"unicode"
)

// DefaultLabeler converts a machine name into a display label. Separator
// characters and camelCase boundaries become word breaks and every word is
// title-cased: "cta_label" and "ctaLabel" both come out as "Cta Label".
func DefaultLabeler(name string) string {
	words := splitWords(name)
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var words []string
	for _, part := range parts {
		words = append(words, splitCamel(part)...)
	}
	return words
}

func splitCamel(word string) []string {
	runes := []rune(word)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if camelBoundary(runes[i-1], runes[i]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

func camelBoundary(prev, cur rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	default:
		return false
	}
}

func titleWord(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
