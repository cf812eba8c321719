package catalog

import (
	"fmt"
	"go/token"

	"github.com/cockroachdb/errors"

	"genre-generator/internal/diagnostic"
	"genre-generator/internal/naming"
)

// ErrInvalidCatalog marks a flattened set that breaks an integrity rule.
var ErrInvalidCatalog = errors.New("invalid genre catalog")

// maxSuggestions bounds the "did you mean" list of a diagnostic.
const maxSuggestions = 3

// ValidateOptions tunes Validate.
type ValidateOptions struct {
	// StrictTokens turns token problems into errors. Set it when native
	// tokens become Go identifiers, i.e. when the GenreID enum is emitted.
	StrictTokens bool
	// IdentPrefix is prepended to a token to form its enum constant name.
	IdentPrefix string
}

// Validate checks the integrity rules of a flattened set:
//   - ids are unique across genres and subgenres
//   - every subgenre's parent is a genre present in the set
//   - native tokens are non-empty and do not collide
//   - with StrictTokens, IdentPrefix+token is a valid Go identifier
func Validate(entries []Entry, opts ValidateOptions) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	idx := NewIndex(entries)

	validateUniqueIDs(&diags, entries, idx)
	validateParents(&diags, entries, idx)
	validateTokens(&diags, entries, opts)

	return diags
}

// ValidateError runs Validate and returns its errors marked ErrInvalidCatalog.
func ValidateError(entries []Entry, opts ValidateOptions) (diagnostic.Diagnostics, error) {
	diags := Validate(entries, opts)

	if err := diags.Error(); err != nil {
		return diags, errors.Mark(errors.Wrap(err, "catalog validation failed"), ErrInvalidCatalog)
	}

	return diags, nil
}

func validateUniqueIDs(diags *diagnostic.Diagnostics, entries []Entry, idx *Index) {
	for i, e := range entries {
		firstPos := idx.byID[e.ID]
		if firstPos == i {
			continue
		}

		first := entries[firstPos]

		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     diagnostic.CodeDuplicateID,
			Message: fmt.Sprintf("%s %q duplicates the id of %s %q",
				kindLabel(e.Kind), e.Name, kindLabel(first.Kind), first.Name),
			EntryID: e.ID,
		})
	}
}

func validateParents(diags *diagnostic.Diagnostics, entries []Entry, idx *Index) {
	var genreIDs []string
	for _, g := range idx.TopLevel() {
		genreIDs = append(genreIDs, g.ID)
	}

	for _, e := range entries {
		switch e.Kind {
		case KindGenre:
			if e.HasParent() {
				diags.AddError(diagnostic.CodeInvalidEntry,
					fmt.Sprintf("genre has parent %q", e.ParentID), "", e.ID)
			}
		case KindSubgenre:
			parent, ok := idx.Lookup(e.ParentID)
			if ok && parent.IsGenre() {
				continue
			}

			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        diagnostic.CodeOrphanSubgenre,
				Message:     fmt.Sprintf("parent %q is not a genre in the catalog", e.ParentID),
				EntryID:     e.ID,
				Suggestions: naming.Suggest(e.ParentID, genreIDs, maxSuggestions),
			})
		default:
			diags.AddError(diagnostic.CodeInvalidEntry,
				fmt.Sprintf("entry has invalid kind %s", e.Kind), "", e.ID)
		}
	}
}

func validateTokens(diags *diagnostic.Diagnostics, entries []Entry, opts ValidateOptions) {
	severity := diagnostic.SeverityWarning
	if opts.StrictTokens {
		severity = diagnostic.SeverityError
	}

	owners := make(map[string]string, len(entries))

	for _, e := range entries {
		if e.NativeToken == "" {
			diags.Add(diagnostic.Diagnostic{
				Severity: severity,
				Code:     diagnostic.CodeEmptyToken,
				Message:  "id has no characters besides separators",
				EntryID:  e.ID,
			})

			continue
		}

		if owner, taken := owners[e.NativeToken]; taken {
			if owner != e.ID {
				diags.Add(diagnostic.Diagnostic{
					Severity: severity,
					Code:     diagnostic.CodeTokenCollision,
					Message:  fmt.Sprintf("native token %s is also derived from %q", e.NativeToken, owner),
					EntryID:  e.ID,
				})
			}

			continue
		}

		owners[e.NativeToken] = e.ID

		if opts.StrictTokens && !token.IsIdentifier(opts.IdentPrefix+e.NativeToken) {
			diags.AddError(diagnostic.CodeInvalidIdentifier,
				fmt.Sprintf("%s is not a valid Go identifier", opts.IdentPrefix+e.NativeToken), "", e.ID)
		}
	}
}

func kindLabel(k Kind) string {
	if k == KindSubgenre {
		return "subgenre"
	}

	return "genre"
}
