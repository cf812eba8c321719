package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NativeToken converts an id into the name of its GenreID variant.
// The pipeline:
// 1. Split on runs of separators (_, -, whitespace).
// 2. Uppercase the first rune of every non-empty token.
// 3. Concatenate without separators.
//
// The remainder of each token keeps its casing, so "kPop" becomes "KPop"
// rather than "Kpop". Runes without a case distinction pass through.
//
// Examples:
//   - "hip_hop" -> "HipHop"
//   - "r-n-b" -> "RNB"
//   - "  lo-fi " -> "LoFi"
//   - "__" -> ""
func NativeToken(s string) string {
	tokens := strings.FieldsFunc(s, isSeparator)

	var result strings.Builder

	result.Grow(len(s))

	for _, token := range tokens {
		first, size := utf8.DecodeRuneInString(token)
		if first == utf8.RuneError && size <= 1 {
			// Invalid UTF-8 is copied through untouched
			result.WriteString(token)

			continue
		}

		result.WriteRune(unicode.ToUpper(first))
		result.WriteString(token[size:])
	}

	return result.String()
}

// isSeparator returns true if the rune delimits tokens inside an id.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// foldIdent lowercases an id and strips its separators so that "Hip-Hop",
// "hip_hop" and "hiphop" compare equal when ranking suggestions.
func foldIdent(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(unicode.ToLower(r))
		}
	}

	return result.String()
}
