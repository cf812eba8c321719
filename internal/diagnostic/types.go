package diagnostic

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Diagnostic codes.
const (
	CodeMissingField      = "MISSING_FIELD"
	CodeInvalidEntry      = "INVALID_ENTRY"
	CodeDuplicateID       = "DUPLICATE_ID"
	CodeOrphanSubgenre    = "ORPHAN_SUBGENRE"
	CodeEmptyToken        = "EMPTY_TOKEN"
	CodeTokenCollision    = "TOKEN_COLLISION"
	CodeInvalidIdentifier = "INVALID_IDENTIFIER"
)

// Diagnostics holds all diagnostic information from a load or validation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Path locates the offending node in the input document
	// (e.g. "genres[2].subgenres[0].id"), if known.
	Path string
	// EntryID identifies which catalog entry this relates to (if any).
	EntryID string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
	} else {
		diag.Severity = SeverityWarning
		d.Warnings = append(d.Warnings, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, path, entryID string) {
	d.Add(Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Path:     path,
		EntryID:  entryID,
	})
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// Suggestions are attached as error hints.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	err := errors.Newf("%d problem(s): %s", len(d.Errors), strings.Join(parts, "; "))

	for _, e := range d.Errors {
		if len(e.Suggestions) > 0 {
			err = errors.WithHintf(err, "%s: did you mean %s?", e.EntryID, strings.Join(e.Suggestions, ", "))
		}
	}

	return err
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	if d.EntryID != "" {
		prefix = append(prefix, "["+d.EntryID+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
