package catalog

import (
	"genre-generator/internal/naming"
	"genre-generator/internal/taxonomy"
)

// Flatten turns the two-level taxonomy into one ordered entry set: each genre
// followed by its subgenres. Duplicate ids are kept; see Validate.
func Flatten(genres []taxonomy.Genre) []Entry {
	size := len(genres)
	for _, g := range genres {
		size += len(g.Subgenres)
	}

	entries := make([]Entry, 0, size)

	for _, g := range genres {
		entries = append(entries, Entry{
			ID:          g.ID,
			Name:        g.Name,
			Kind:        KindGenre,
			NativeToken: naming.NativeToken(g.ID),
		})

		for _, sub := range g.Subgenres {
			entries = append(entries, Entry{
				ID:          sub.ID,
				Name:        sub.Name,
				Kind:        KindSubgenre,
				ParentID:    g.ID,
				NativeToken: naming.NativeToken(sub.ID),
			})
		}
	}

	return entries
}
