package catalog

// Entry is the flattened representation shared by genres and subgenres.
type Entry struct {
	// ID is the snake_case identifier from the taxonomy. Genres and
	// subgenres share one namespace.
	ID string
	// Name is the human-readable label.
	Name string
	// Kind is KindGenre or KindSubgenre.
	Kind Kind
	// ParentID is the enclosing genre's ID for subgenres and empty for genres.
	ParentID string
	// NativeToken names the GenreID variant for this entry. It is derived
	// from ID once, when the entry is built.
	NativeToken string
}

// HasParent reports whether the entry is attached to a parent genre.
func (e Entry) HasParent() bool {
	return e.ParentID != ""
}

// IsGenre reports whether the entry is a top-level genre.
func (e Entry) IsGenre() bool {
	return e.Kind == KindGenre
}

// Node is a genre together with its subgenres.
type Node struct {
	Genre     Entry
	Subgenres []Entry
}
