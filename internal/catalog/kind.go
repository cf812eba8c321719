package catalog

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind tags an entry as a top-level genre or a subgenre.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindGenre
	KindSubgenre
)
