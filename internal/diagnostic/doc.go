// Package diagnostic provides structured warnings and errors reported while
// loading and validating a genre taxonomy.
//
// Key capabilities:
//   - Shape problems in the input document (missing ids, names, lists)
//   - Catalog integrity errors (duplicate ids, orphan subgenres)
//   - Native token warnings (empty tokens, collisions)
//   - "Did you mean" suggestions attached to a diagnostic
package diagnostic
