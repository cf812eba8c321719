// Package taxonomy loads the two-level genre document that drives generation.
//
// The document has exactly one shape, in JSON or YAML:
//
//	{ "genres": [ { "id": "...", "name": "...", "subgenres": [ { "id": "...", "name": "..." } ] } ] }
//
// Loading fails with ErrInputRead when the file cannot be read and with
// ErrInputShape when it does not decode into that shape. No schema repair
// or default filling is attempted.
package taxonomy
