package strutil

import "strings"

// asciiPunctuation is the set of characters stripped by RemovePunctuation
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// RemovePunctuation returns a copy of the string with all ASCII punctuation
// characters removed. Every other character passes through unchanged.
func RemovePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)
}

// IsPalindrome reports whether a string reads the same forwards and
// backwards, ignoring case, spaces, and punctuation. The empty string is
// considered a palindrome.
func IsPalindrome(text string) bool {
	cleaned := strings.ToLower(strings.ReplaceAll(RemovePunctuation(text), " ", ""))
	runes := []rune(cleaned)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
