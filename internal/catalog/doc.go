// Package catalog flattens a genre taxonomy into a uniform, ordered entry set
// and answers read-only queries over it.
//
// Every genre is followed immediately by its subgenres, in input order. The
// order is observable: it fixes the layout of generated artifacts and keeps
// regeneration diff-stable.
//
// Flatten is purely structural. Integrity rules (unique ids, subgenres
// pointing at genres, usable native tokens) are checked by Validate, which
// the generation pipeline runs before anything is emitted.
package catalog
