// Package strutil provides pure string transformation functions.
//
// These helpers are self-contained and hold no state, and include:
//   - Case-style conversion (snake_case, camelCase)
//   - Punctuation stripping
//   - Palindrome checking
package strutil
