package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "genres.json", cfg.Input)
	assert.Equal(t, filepath.Join("genres", "genres_gen.go"), cfg.Output)
	assert.Equal(t, "genres", cfg.Package)
	assert.Equal(t, "HEADER", cfg.Header)
	assert.False(t, cfg.Enum.Enabled)
	assert.Equal(t, "genre_id_gen.go", cfg.Enum.File)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Verbose)

	assert.Equal(t, "genres", cfg.OutputDir())
	assert.Equal(t, "genres_gen.go", cfg.CatalogFile())
	assert.Equal(t, "", cfg.EnumFile())
}

func TestLoad_ConfigFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "genregen.toml"), []byte(`
input = "data/genres.yaml"
output = "pkg/music-genres/catalog_gen.go"

[enum]
enabled = true
`), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "data/genres.yaml", cfg.Input)
	assert.Equal(t, "musicgenres", cfg.Package)
	assert.True(t, cfg.Enum.Enabled)
	assert.Equal(t, "genre_id_gen.go", cfg.EnumFile())
	assert.Equal(t, filepath.Join("pkg", "music-genres"), cfg.OutputDir())
}

func TestLoad_ExplicitYAMLFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: catalog\nlog:\n  verbose: true\n"), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.Package)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GENREGEN_INPUT", "other.json")
	t.Setenv("GENREGEN_ENUM_ENABLED", "true")
	t.Setenv("GENREGEN_LOG_JSON", "true")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "other.json", cfg.Input)
	assert.True(t, cfg.Enum.Enabled)
	assert.True(t, cfg.Log.JSON)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"ok", Config{Input: "g.json", Output: "genres/g.go"}, ""},
		{"no input", Config{Output: "genres/g.go"}, "input is required"},
		{"no output", Config{Input: "g.json"}, "output is required"},
		{
			"enum without file",
			Config{Input: "g.json", Output: "genres/g.go", Enum: EnumConfig{Enabled: true}},
			"enum.file is required",
		},
		{
			"enum overwrites catalog",
			Config{Input: "g.json", Output: "genres/g.go", Enum: EnumConfig{Enabled: true, File: "g.go"}},
			"would overwrite the catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDerivePackageName(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"genres/genres_gen.go", "genres"},
		{"pkg/Music_Genres/x.go", "musicgenres"},
		{"genres_gen.go", "genres"},
		{"2024/x.go", "genres"},
		{"/x.go", "genres"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			assert.Equal(t, tt.expected, DerivePackageName(tt.output))
		})
	}
}
