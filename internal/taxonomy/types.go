package taxonomy

// Document is the root of a taxonomy file.
type Document struct {
	Genres []Genre `json:"genres" toml:"genres" yaml:"genres"`
}

// Genre is a top-level taxonomy entry and its ordered subgenres.
type Genre struct {
	ID        string     `json:"id"        toml:"id"        yaml:"id"`
	Name      string     `json:"name"      toml:"name"      yaml:"name"`
	Subgenres []Subgenre `json:"subgenres" toml:"subgenres" yaml:"subgenres"`
}

// Subgenre is nested under exactly one Genre.
type Subgenre struct {
	ID   string `json:"id"   toml:"id"   yaml:"id"`
	Name string `json:"name" toml:"name" yaml:"name"`
}

// Format identifies the encoding of a taxonomy document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// CountEntries returns genres plus subgenres, the size of the flattened set.
func (d *Document) CountEntries() int {
	n := len(d.Genres)
	for _, g := range d.Genres {
		n += len(g.Subgenres)
	}

	return n
}
