package strutil

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a string to snake_case.
//
// Whitespace and hyphens become underscores (runs collapse to a single
// underscore), an underscore is inserted before each capital letter that
// follows a lowercase letter, and the result is lowercased with
// leading/trailing underscores trimmed. The empty string maps to itself,
// and input already in snake_case is returned unchanged.
func ToSnakeCase(text string) string {
	var out []rune
	prevLower := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r) || r == '-':
			if len(out) > 0 && out[len(out)-1] != '_' {
				out = append(out, '_')
			}
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
			prevLower = false
		default:
			out = append(out, r)
			prevLower = true
		}
	}
	return strings.Trim(string(out), "_")
}

// ToCamelCase converts a string to camelCase.
//
// Words are maximal runs of letters and digits; everything else is treated
// as a separator. The first word is lowercased and each subsequent word is
// capitalized. Empty or all-separator input returns the empty string.
func ToCamelCase(text string) string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// capitalize lowercases a word and uppercases its first letter
func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
