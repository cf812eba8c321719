package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"genre-generator/internal/diagnostic"
)

var (
	// ErrInputRead marks a taxonomy document that is missing or unreadable.
	ErrInputRead = errors.New("taxonomy input unreadable")
	// ErrInputShape marks a taxonomy document that does not match the expected structure.
	ErrInputShape = errors.New("taxonomy input malformed")
)

// LoadFile loads and parses a taxonomy document from the given path.
// The format is chosen from the file extension; anything that is not
// .yaml, .yml or .toml is decoded as JSON.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(
			errors.Wrapf(err, "failed to read taxonomy file %s", path),
			ErrInputRead,
		)
	}

	doc, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return doc, nil
}

// FormatForPath picks the document format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Parse decodes taxonomy data and checks its shape.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document

	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, errors.Newf("unsupported taxonomy format %q", format)
	}

	if err != nil {
		return nil, errors.Mark(
			errors.Wrapf(err, "failed to parse taxonomy %s", format),
			ErrInputShape,
		)
	}

	diags := CheckShape(&doc)
	if err := diags.Error(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid taxonomy shape"), ErrInputShape)
	}

	return &doc, nil
}

// CheckShape reports every structural problem in a decoded document.
// A list that is present but empty is valid; a list that is absent is not.
func CheckShape(doc *Document) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if doc.Genres == nil {
		diags.AddError(diagnostic.CodeMissingField, "missing genres list", "genres", "")

		return diags
	}

	for i, g := range doc.Genres {
		base := fmt.Sprintf("genres[%d]", i)
		checkIDName(&diags, base, g.ID, g.Name)

		if g.Subgenres == nil {
			diags.AddError(diagnostic.CodeMissingField, "missing subgenres list", base+".subgenres", g.ID)

			continue
		}

		for j, s := range g.Subgenres {
			checkIDName(&diags, fmt.Sprintf("%s.subgenres[%d]", base, j), s.ID, s.Name)
		}
	}

	return diags
}

// checkIDName records a missing id or name at path.
func checkIDName(diags *diagnostic.Diagnostics, path, id, name string) {
	if id == "" {
		diags.AddError(diagnostic.CodeMissingField, "missing id", path+".id", "")
	}

	if name == "" {
		diags.AddError(diagnostic.CodeMissingField, "missing name", path+".name", id)
	}
}
