// Package naming derives native enum tokens from taxonomy ids and ranks
// near-miss ids for "did you mean" hints.
//
// Key functions:
//   - NativeToken: converts a snake/kebab/space separated id into the token
//     naming its GenreID variant
//   - Levenshtein: rune-aware edit distance
//   - Suggest: ranks known ids by similarity to an unknown one
package naming
