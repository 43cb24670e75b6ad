package format

import (
	"strings"
	"unicode"
)

// TitleCase upper-cases the first rune of the value, leaving the rest alone.
func TitleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// SnakeCase converts "Loft Conversion", "loftConversion" or "loft-conversion"
// to "loft_conversion".
func SnakeCase(value string) string {
	return strings.Join(splitWords(value), "_")
}

// KebabCase converts the value to "loft-conversion" form.
func KebabCase(value string) string {
	return strings.Join(splitWords(value), "-")
}

// CamelCase converts the value to "loftConversion" form.
func CamelCase(value string) string {
	words := splitWords(value)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(TitleCase(w))
	}
	return b.String()
}

// splitWords breaks a value on spaces, underscores, hyphens and lower-to-upper
// case boundaries, returning lower-cased words.
func splitWords(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(value)
	for i, r := range runes {
		switch {
		case r == ' ' || r == '_' || r == '-' || r == '\t':
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}
