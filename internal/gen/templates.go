package gen

import (
	"strings"
	"text/template"
	"unicode"

	"github.com/Masterminds/sprig/v3"
)

// templateData holds all data needed for the generated files.
type templateData struct {
	Header      string
	Tool        string
	Source      string
	PackageName string
	EnumPrefix  string
	Groups      []groupData
}

// groupData is a genre and the subgenres following it. Name is empty for
// entries that precede any genre.
type groupData struct {
	Name    string
	Entries []entryData
}

// entryData is one catalog entry, ready for the template.
type entryData struct {
	ID          string
	Name        string
	Type        string
	ParentID    string
	NativeToken string
}

// templateFuncs returns the Sprig text functions plus generator helpers.
func templateFuncs() template.FuncMap {
	funcMap := sprig.TxtFuncMap()
	funcMap["comment"] = commentText

	return funcMap
}

// commentText flattens s onto one line so it can sit in a // comment.
// Runes the Go scanner rejects in comments, such as NUL or a byte order
// mark, are dropped.
func commentText(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case !unicode.IsPrint(r):
			return -1
		default:
			return r
		}
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

var catalogTemplate = template.Must(template.New("catalog").Funcs(templateFuncs()).Parse(`
{{- with .Header}}{{.}}

{{end -}}
// Code generated by {{.Tool}} from {{comment .Source}}. DO NOT EDIT.

package {{.PackageName}}

// GenreType distinguishes top-level genres from subgenres.
type GenreType int

const (
	// Genre is a top-level taxonomy entry with no parent.
	Genre GenreType = iota + 1
	// Subgenre is nested under exactly one genre.
	Subgenre
)

// String returns "genre" or "subgenre".
func (t GenreType) String() string {
	switch t {
	case Genre:
		return "genre"
	case Subgenre:
		return "subgenre"
	default:
		return "unknown"
	}
}

// UnifiedGenreEntry is a genre or subgenre. NativeToken is the PascalCase
// form of ID used to name the entry in native enumerations.
type UnifiedGenreEntry struct {
	ID          string
	Name        string
	Type        GenreType
	ParentID    string // empty for genres
	NativeToken string
}

// HierarchicalGenre is a genre together with its subgenres.
type HierarchicalGenre struct {
	Genre     UnifiedGenreEntry
	Subgenres []UnifiedGenreEntry
}

// AllGenresUnified is the flat list of all music genres and subgenres.
// Every genre is followed by its own subgenres.
var AllGenresUnified = []UnifiedGenreEntry{
{{- range $i, $g := .Groups}}
{{- if $i}}
{{end}}
{{- if $g.Name}}
	// ===== Genre: {{comment $g.Name}} =====
{{- end}}
{{- range $g.Entries}}
	{ID: {{quote .ID}}, Name: {{quote .Name}}, Type: {{.Type}}{{with .ParentID}}, ParentID: {{quote .}}{{end}}, NativeToken: {{quote .NativeToken}}},
{{- end}}
{{- end}}
}

// GetGenreByID returns the genre or subgenre with the given ID.
func GetGenreByID(id string) (UnifiedGenreEntry, bool) {
	for _, g := range AllGenresUnified {
		if g.ID == id {
			return g, true
		}
	}

	return UnifiedGenreEntry{}, false
}

// GetGenreName returns the display name of a genre or subgenre by its ID.
func GetGenreName(id string) (string, bool) {
	g, ok := GetGenreByID(id)
	if !ok {
		return "", false
	}

	return g.Name, true
}

// IsValidGenreID reports whether id names a genre or subgenre.
func IsValidGenreID(id string) bool {
	_, ok := GetGenreByID(id)

	return ok
}

// GetSubgenresOf returns all subgenres of the given genre ID.
func GetSubgenresOf(parentID string) []UnifiedGenreEntry {
	var out []UnifiedGenreEntry

	if parentID == "" {
		return out
	}

	for _, g := range AllGenresUnified {
		if g.ParentID == parentID {
			out = append(out, g)
		}
	}

	return out
}

// GetGenres returns only the top-level genres.
func GetGenres() []UnifiedGenreEntry {
	var out []UnifiedGenreEntry

	for _, g := range AllGenresUnified {
		if g.Type == Genre {
			out = append(out, g)
		}
	}

	return out
}

// GetHierarchicalGenres returns every genre with its subgenres.
func GetHierarchicalGenres() []HierarchicalGenre {
	genres := GetGenres()
	out := make([]HierarchicalGenre, 0, len(genres))

	for _, g := range genres {
		out = append(out, HierarchicalGenre{Genre: g, Subgenres: GetSubgenresOf(g.ID)})
	}

	return out
}
`))

var enumTemplate = template.Must(template.New("enum").Funcs(templateFuncs()).Parse(`
{{- with .Header}}{{.}}

{{end -}}
// Code generated by {{.Tool}} from {{comment .Source}}. DO NOT EDIT.

package {{.PackageName}}

import "strconv"

// {{.EnumPrefix}} is the flat enumeration of all genres and subgenres.
// Variants are grouped under genre comments.
type {{.EnumPrefix}} int

const (
	_ {{.EnumPrefix}} = iota
{{- range .Groups}}
{{- if .Name}}

	// ===== Genre: {{comment .Name}} =====
{{- end}}
{{- range .Entries}}
	{{$.EnumPrefix}}{{.NativeToken}}
{{- end}}
{{- end}}
)

var genreIDTokens = [...]string{
{{- range .Groups}}
{{- range .Entries}}
	{{$.EnumPrefix}}{{.NativeToken}}: {{quote .NativeToken}},
{{- end}}
{{- end}}
}

// String returns the native token of the variant.
func (id {{.EnumPrefix}}) String() string {
	if id <= 0 || int(id) >= len(genreIDTokens) {
		return "{{.EnumPrefix}}(" + strconv.Itoa(int(id)) + ")"
	}

	return genreIDTokens[id]
}

// Parse{{.EnumPrefix}} returns the variant named by token.
func Parse{{.EnumPrefix}}(token string) ({{.EnumPrefix}}, bool) {
	for i, t := range genreIDTokens {
		if i > 0 && t == token {
			return {{.EnumPrefix}}(i), true
		}
	}

	return 0, false
}

// ToNativeType converts the entry into its {{.EnumPrefix}} variant.
func (e UnifiedGenreEntry) ToNativeType() ({{.EnumPrefix}}, bool) {
	return Parse{{.EnumPrefix}}(e.NativeToken)
}
`))
