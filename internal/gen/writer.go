package gen

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrOutputWrite marks a failure to write a generated artifact.
var ErrOutputWrite = errors.New("generated output not writable")

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist. Every file is first staged
// as a temporary sibling; targets are only renamed into place once all of
// them are staged, so a failed write leaves the previous set untouched.
// Renames are atomic one file at a time, not as a group.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return errors.Mark(errors.Wrap(err, "creating output directory"), ErrOutputWrite)
	}

	staged := make([]stagedFile, 0, len(files))

	defer func() {
		for _, sf := range staged {
			if !sf.renamed {
				_ = os.Remove(sf.tmp)
			}
		}
	}()

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		tmp, err := stageFile(outputPath, file.Content)
		if err != nil {
			return errors.Mark(errors.Wrapf(err, "writing file %s", file.Filename), ErrOutputWrite)
		}

		staged = append(staged, stagedFile{tmp: tmp, path: outputPath})
	}

	for i := range staged {
		if err := os.Rename(staged[i].tmp, staged[i].path); err != nil {
			return errors.Mark(
				errors.Wrapf(err, "replacing file %s", filepath.Base(staged[i].path)),
				ErrOutputWrite,
			)
		}

		staged[i].renamed = true
	}

	return nil
}

// stagedFile is a fully written temp file waiting to replace path.
type stagedFile struct {
	tmp     string
	path    string
	renamed bool
}

// stageFile writes content to a synced temp file next to path and returns
// the temp file name. Nothing is left behind on failure.
func stageFile(path string, content []byte) (name string, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "creating temp file")
	}

	name = tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(name)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()

		return "", errors.Wrap(err, "writing temp file")
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()

		return "", errors.Wrap(err, "syncing temp file")
	}

	if err = tmp.Close(); err != nil {
		return "", errors.Wrap(err, "closing temp file")
	}

	if err = os.Chmod(name, filePerm); err != nil {
		return "", errors.Wrap(err, "setting file mode")
	}

	return name, nil
}

// writeFileAtomic replaces path with content via a temp file and rename.
func writeFileAtomic(path string, content []byte) error {
	tmp, err := stageFile(path, content)
	if err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return errors.Wrap(err, "replacing file")
	}

	return nil
}

// generatedMarker matches the marker line this tool writes.
var generatedMarker = regexp.MustCompile(`(?m)^// Code generated by ` + regexp.QuoteMeta(ToolName) + `\b.* DO NOT EDIT\.$`)

// IsGenerated reports whether content was written by this generator.
// Files without the marker belong to someone else and are never removed.
func IsGenerated(content []byte) bool {
	return generatedMarker.Match(content)
}

// sidecarName is where unformatted source for filename is kept for debugging.
func sidecarName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// writeSidecar stores source that go/format rejected next to the intended
// output and returns its path.
func writeSidecar(outputDir, filename string, content []byte) (string, error) {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, sidecarName(filename))

	return path, writeFileAtomic(path, content)
}
