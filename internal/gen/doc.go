// Package gen renders a flattened genre catalog into deterministic Go source.
//
// Generation uses text/template (with the Sprig text functions) followed by
// go/format. Two artifacts can be produced:
//   - the catalog file: GenreType, UnifiedGenreEntry, the AllGenresUnified
//     literal listing and the query functions bound to it
//   - the enum file: the GenreID type with one constant per native token
//
// The same entries always render to the same bytes. Output carries no
// timestamps and never depends on map iteration order.
package gen
