package gen

import (
	"bytes"
	"go/format"
	"go/token"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"genre-generator/internal/catalog"
)

// ToolName is written into the generated-code marker.
const ToolName = "genre-generator"

// EnumPrefix is prepended to native tokens to name GenreID constants.
const EnumPrefix = "GenreID"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is where files are written. The generator only uses it for
	// the unformatted debug sidecar; writing is WriteFiles' job.
	OutputDir string
	// CatalogFile is the filename of the catalog artifact.
	CatalogFile string
	// EnumFile is the filename of the GenreID artifact. Empty disables it.
	EnumFile string
	// Header is prepended verbatim to every file, typically a license.
	// Lines not already starting with "//" are commented out.
	Header string
	// Source names the taxonomy document in the generated-code marker.
	Source string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "genres",
		OutputDir:   "./genres",
		CatalogFile: "genres_gen.go",
		Source:      "genres.json",
	}
}

// Generator generates Go code from a flattened catalog.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "genres_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the catalog artifact and, if configured, the enum artifact.
func (g *Generator) Generate(entries []catalog.Entry) ([]GeneratedFile, error) {
	content, err := g.EmitCatalog(entries)
	if err != nil {
		return nil, errors.Wrap(err, "generating catalog")
	}

	files := []GeneratedFile{{Filename: g.config.CatalogFile, Content: content}}

	if g.config.EnumFile != "" {
		content, err := g.EmitEnum(entries)
		if err != nil {
			return nil, errors.Wrap(err, "generating enum")
		}

		files = append(files, GeneratedFile{Filename: g.config.EnumFile, Content: content})
	}

	return files, nil
}

// EmitCatalog renders the literal listing and query functions.
func (g *Generator) EmitCatalog(entries []catalog.Entry) ([]byte, error) {
	return g.render(catalogTemplate, g.config.CatalogFile, entries)
}

// EmitEnum renders the GenreID enumeration. Tokens must already be valid,
// unique identifiers; see catalog.Validate with StrictTokens.
func (g *Generator) EmitEnum(entries []catalog.Entry) ([]byte, error) {
	return g.render(enumTemplate, g.config.EnumFile, entries)
}

func (g *Generator) render(tmpl *template.Template, filename string, entries []catalog.Entry) ([]byte, error) {
	if !token.IsIdentifier(g.config.PackageName) {
		return nil, errors.Newf("invalid package name %q", g.config.PackageName)
	}

	data := g.buildTemplateData(entries)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		err = errors.WithHint(
			errors.Wrap(err, "formatting code"),
			"check ids and names for characters that cannot appear in Go source",
		)

		if g.config.OutputDir != "" && filename != "" {
			if path, sidecarErr := writeSidecar(g.config.OutputDir, filename, buf.Bytes()); sidecarErr == nil {
				err = errors.WithHintf(err, "unformatted source kept in %s", path)
			}
		}

		return nil, err
	}

	return formatted, nil
}

// buildTemplateData groups entries under the genre that precedes them.
func (g *Generator) buildTemplateData(entries []catalog.Entry) *templateData {
	data := &templateData{
		Header:      commentHeader(g.config.Header),
		Tool:        ToolName,
		Source:      g.config.Source,
		PackageName: g.config.PackageName,
		EnumPrefix:  EnumPrefix,
	}

	for _, e := range entries {
		if e.IsGenre() || len(data.Groups) == 0 {
			group := groupData{}
			if e.IsGenre() {
				group.Name = e.Name
			}

			data.Groups = append(data.Groups, group)
		}

		group := &data.Groups[len(data.Groups)-1]
		group.Entries = append(group.Entries, entryData{
			ID:          e.ID,
			Name:        e.Name,
			Type:        e.Kind.String(),
			ParentID:    e.ParentID,
			NativeToken: e.NativeToken,
		})
	}

	return data
}

// commentHeader turns a header into Go line comments.
func commentHeader(header string) string {
	header = strings.TrimRight(header, " \t\r\n")
	if header == "" {
		return ""
	}

	lines := strings.Split(header, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")

		switch {
		case strings.HasPrefix(line, "//"):
			lines[i] = line
		case line == "":
			lines[i] = "//"
		default:
			lines[i] = "// " + line
		}
	}

	return strings.Join(lines, "\n")
}
