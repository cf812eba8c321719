// Package pipeline runs the generator as a build step: read the taxonomy,
// flatten it, validate the result, emit the artifacts and write or compare
// them.
package pipeline

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"

	"genre-generator/internal/catalog"
	"genre-generator/internal/config"
	"genre-generator/internal/diagnostic"
	"genre-generator/internal/gen"
	"genre-generator/internal/logger"
	"genre-generator/internal/taxonomy"
)

// ErrStale marks generated files that differ from what the input produces.
var ErrStale = errors.New("generated files are stale")

// Result summarizes a generation run.
type Result struct {
	// Genres is the number of top-level genres.
	Genres int
	// Entries is the number of flattened entries, genres included.
	Entries int
	// Files lists the written paths.
	Files []string
	// Diagnostics holds the warnings that did not stop generation.
	Diagnostics diagnostic.Diagnostics
}

// StaleFile describes one artifact that does not match the input.
type StaleFile struct {
	Path    string
	Missing bool
	// Obsolete marks a generated enum artifact left over after the enum
	// was disabled.
	Obsolete bool
	// Diff is a unified diff from the file on disk to the expected content.
	Diff string
}

// CheckResult is the outcome of Check.
type CheckResult struct {
	Entries     int
	Stale       []StaleFile
	Diagnostics diagnostic.Diagnostics
}

// UpToDate reports whether every artifact matches.
func (r *CheckResult) UpToDate() bool {
	return len(r.Stale) == 0
}

// Err returns ErrStale with a regeneration hint when any artifact is stale.
func (r *CheckResult) Err() error {
	if r.UpToDate() {
		return nil
	}

	paths := make([]string, 0, len(r.Stale))
	for _, s := range r.Stale {
		paths = append(paths, s.Path)
	}

	return errors.WithHint(
		errors.Mark(errors.Newf("%d stale file(s): %s", len(paths), strings.Join(paths, ", ")), ErrStale),
		"run genre-generator to regenerate",
	)
}

// build is everything before the output touches the filesystem.
type build struct {
	genres  int
	entries []catalog.Entry
	files   []gen.GeneratedFile
	diags   diagnostic.Diagnostics
}

// Run generates the artifacts and writes them into the output directory.
// Nothing is written unless every stage before it succeeds.
func Run(cfg *config.Config) (*Result, error) {
	log := logger.Named("pipeline")

	b, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	dir := cfg.OutputDir()

	log.Debugw("writing artifacts", "dir", dir, "files", len(b.files))

	if err := gen.WriteFiles(b.files, dir); err != nil {
		return nil, err
	}

	result := &Result{
		Genres:      b.genres,
		Entries:     len(b.entries),
		Diagnostics: b.diags,
	}

	for _, f := range b.files {
		result.Files = append(result.Files, filepath.Join(dir, f.Filename))
	}

	if path, ok := obsoleteEnum(cfg); ok {
		if err := os.Remove(path); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "removing obsolete %s", path), gen.ErrOutputWrite)
		}

		log.Infow("removed obsolete enum artifact", "path", path)
	}

	log.Infow("generated genre catalog",
		"genres", result.Genres,
		"entries", result.Entries,
		"files", result.Files,
	)

	return result, nil
}

// Check generates the artifacts in memory and compares them with the files
// on disk. It only fails for pipeline errors; staleness is reported in the
// result.
func Check(cfg *config.Config) (*CheckResult, error) {
	log := logger.Named("pipeline")

	b, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Entries: len(b.entries), Diagnostics: b.diags}

	for _, f := range b.files {
		path := filepath.Join(cfg.OutputDir(), f.Filename)

		stale, err := compare(path, f.Content)
		if err != nil {
			return nil, err
		}

		if stale != nil {
			log.Debugw("stale artifact", "path", path, "missing", stale.Missing)
			result.Stale = append(result.Stale, *stale)
		}
	}

	if path, ok := obsoleteEnum(cfg); ok {
		diff, err := unifiedDiff(path, readOrEmpty(path), nil)
		if err != nil {
			return nil, err
		}

		result.Stale = append(result.Stale, StaleFile{Path: path, Obsolete: true, Diff: diff})
	}

	return result, nil
}

// obsoleteEnum returns the enum artifact path when the enum is disabled but
// a file written by this generator is still there.
func obsoleteEnum(cfg *config.Config) (string, bool) {
	if cfg.Enum.Enabled || cfg.Enum.File == "" {
		return "", false
	}

	name := filepath.Base(cfg.Enum.File)
	if name == cfg.CatalogFile() {
		return "", false
	}

	path := filepath.Join(cfg.OutputDir(), name)

	content, err := os.ReadFile(path)
	if err != nil || !gen.IsGenerated(content) {
		return "", false
	}

	return path, true
}

func readOrEmpty(path string) []byte {
	content, _ := os.ReadFile(path)

	return content
}

func prepare(cfg *config.Config) (*build, error) {
	log := logger.Named("pipeline")

	log.Debugw("loading taxonomy", "input", cfg.Input)

	doc, err := taxonomy.LoadFile(cfg.Input)
	if err != nil {
		return nil, err
	}

	entries := catalog.Flatten(doc.Genres)

	log.Debugw("flattened taxonomy", "genres", len(doc.Genres), "entries", len(entries))

	diags, err := catalog.ValidateError(entries, catalog.ValidateOptions{
		StrictTokens: cfg.Enum.Enabled,
		IdentPrefix:  gen.EnumPrefix,
	})
	if err != nil {
		return nil, err
	}

	for _, w := range diags.Warnings {
		log.Warnw(w.Message, "code", w.Code, "entry", w.EntryID)
	}

	header, err := readHeader(cfg.Header)
	if err != nil {
		return nil, err
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		PackageName: cfg.Package,
		OutputDir:   cfg.OutputDir(),
		CatalogFile: cfg.CatalogFile(),
		EnumFile:    cfg.EnumFile(),
		Header:      header,
		Source:      filepath.ToSlash(cfg.Input),
	})

	files, err := generator.Generate(entries)
	if err != nil {
		return nil, err
	}

	return &build{
		genres:  len(doc.Genres),
		entries: entries,
		files:   files,
		diags:   diags,
	}, nil
}

// readHeader returns the trimmed header file contents. A missing file
// yields no header.
func readHeader(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Named("pipeline").Debugw("no header file", "path", path)

		return "", nil
	}

	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "failed to read header file %s", path), taxonomy.ErrInputRead)
	}

	return strings.TrimSpace(string(data)), nil
}

func compare(path string, want []byte) (*StaleFile, error) {
	got, err := os.ReadFile(path)

	missing := errors.Is(err, fs.ErrNotExist)
	if err != nil && !missing {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if !missing && bytes.Equal(got, want) {
		return nil, nil
	}

	diff, err := unifiedDiff(path, got, want)
	if err != nil {
		return nil, err
	}

	return &StaleFile{Path: path, Missing: missing, Diff: diff}, nil
}

func unifiedDiff(path string, got, want []byte) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(got)),
		B:        difflib.SplitLines(string(want)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrap(err, "diffing artifact")
	}

	return diff, nil
}
