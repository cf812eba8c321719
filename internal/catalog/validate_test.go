package catalog

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genre-generator/internal/diagnostic"
	"genre-generator/internal/taxonomy"
)

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_CleanCatalog(t *testing.T) {
	diags := Validate(Flatten(sampleTaxonomy()), ValidateOptions{StrictTokens: true, IdentPrefix: "GenreID"})

	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
}

func TestValidate_DuplicateIDs(t *testing.T) {
	entries := Flatten([]taxonomy.Genre{
		{ID: "rock", Name: "Rock", Subgenres: []taxonomy.Subgenre{{ID: "grunge", Name: "Grunge"}}},
		{ID: "alternative", Name: "Alternative", Subgenres: []taxonomy.Subgenre{{ID: "grunge", Name: "Grunge (alt)"}}},
		{ID: "rock", Name: "Rock Again"},
	})

	diags := Validate(entries, ValidateOptions{})

	assert.Equal(t, []string{diagnostic.CodeDuplicateID, diagnostic.CodeDuplicateID}, codes(diags.Errors))
	assert.Equal(t, "grunge", diags.Errors[0].EntryID)
	assert.Contains(t, diags.Errors[0].Message, `subgenre "Grunge (alt)" duplicates the id of subgenre "Grunge"`)
	assert.Equal(t, "rock", diags.Errors[1].EntryID)
}

func TestValidate_GenreAndSubgenreShareNamespace(t *testing.T) {
	entries := Flatten([]taxonomy.Genre{
		{ID: "jazz", Name: "Jazz"},
		{ID: "latin", Name: "Latin", Subgenres: []taxonomy.Subgenre{{ID: "jazz", Name: "Latin Jazz"}}},
	})

	diags := Validate(entries, ValidateOptions{})

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateID, diags.Errors[0].Code)
}

func TestValidate_OrphanSubgenre(t *testing.T) {
	entries := []Entry{
		{ID: "hip_hop", Name: "Hip-Hop", Kind: KindGenre, NativeToken: "HipHop"},
		{ID: "trap", Name: "Trap", Kind: KindSubgenre, ParentID: "hiphop", NativeToken: "Trap"},
		{ID: "drill", Name: "Drill", Kind: KindSubgenre, ParentID: "trap", NativeToken: "Drill"},
	}

	diags := Validate(entries, ValidateOptions{})

	require.Len(t, diags.Errors, 2)
	assert.Equal(t, diagnostic.CodeOrphanSubgenre, diags.Errors[0].Code)
	assert.Equal(t, "trap", diags.Errors[0].EntryID)
	assert.Equal(t, []string{"hip_hop"}, diags.Errors[0].Suggestions)

	// Parent exists but is itself a subgenre
	assert.Equal(t, diagnostic.CodeOrphanSubgenre, diags.Errors[1].Code)
	assert.Equal(t, "drill", diags.Errors[1].EntryID)
}

func TestValidate_InvalidEntries(t *testing.T) {
	entries := []Entry{
		{ID: "rock", Name: "Rock", Kind: KindGenre, ParentID: "pop", NativeToken: "Rock"},
		{ID: "pop", Name: "Pop", NativeToken: "Pop"},
	}

	diags := Validate(entries, ValidateOptions{})

	assert.Equal(t, []string{diagnostic.CodeInvalidEntry, diagnostic.CodeInvalidEntry}, codes(diags.Errors))
}

func TestValidate_TokenProblems(t *testing.T) {
	entries := Flatten([]taxonomy.Genre{
		{ID: "lo_fi", Name: "Lo-Fi", Subgenres: []taxonomy.Subgenre{
			{ID: "lo-fi", Name: "Lo Fi"},
			{ID: "__", Name: "Nothing"},
		}},
		{ID: "80s", Name: "Eighties"},
	})

	t.Run("lenient", func(t *testing.T) {
		diags := Validate(entries, ValidateOptions{})

		assert.True(t, diags.IsValid())
		assert.Equal(t, []string{diagnostic.CodeTokenCollision, diagnostic.CodeEmptyToken}, codes(diags.Warnings))
	})

	t.Run("strict", func(t *testing.T) {
		diags := Validate(entries, ValidateOptions{StrictTokens: true, IdentPrefix: "GenreID"})

		// GenreID80s is a valid identifier, so only the two token problems remain
		assert.Equal(t, []string{diagnostic.CodeTokenCollision, diagnostic.CodeEmptyToken}, codes(diags.Errors))
		assert.Empty(t, diags.Warnings)
	})

	t.Run("strict without prefix", func(t *testing.T) {
		diags := Validate(entries, ValidateOptions{StrictTokens: true})

		assert.Contains(t, codes(diags.Errors), diagnostic.CodeInvalidIdentifier)
	})
}

func TestValidateError_Marks(t *testing.T) {
	entries := Flatten([]taxonomy.Genre{{ID: "rock", Name: "Rock"}, {ID: "rock", Name: "Rock"}})

	_, err := ValidateError(entries, ValidateOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.Contains(t, err.Error(), "DUPLICATE_ID")

	_, err = ValidateError(Flatten(sampleTaxonomy()), ValidateOptions{})
	assert.NoError(t, err)
}
