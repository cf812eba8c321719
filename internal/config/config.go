// Package config resolves generator settings from defaults, an optional
// config file, GENREGEN_* environment variables and command-line flags.
package config

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. GENREGEN_ENUM_ENABLED.
	EnvPrefix = "GENREGEN"
	// FileName is the config file looked up in the working directory,
	// with any extension viper understands (genregen.toml, genregen.yaml, ...).
	FileName = "genregen"
	// fallbackPackage is used when no package name can be derived.
	fallbackPackage = "genres"
)

// Config holds all generator settings.
type Config struct {
	// Input is the taxonomy document.
	Input string `mapstructure:"input"`
	// Output is the path of the catalog artifact.
	Output string `mapstructure:"output"`
	// Package is the generated package name. Empty derives it from Output.
	Package string `mapstructure:"package"`
	// Header is an optional license header file. A missing file is skipped.
	Header string `mapstructure:"header"`

	Enum EnumConfig `mapstructure:"enum"`
	Log  LogConfig  `mapstructure:"log"`
}

// EnumConfig controls the GenreID artifact.
type EnumConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// LogConfig controls logging.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers every key with its default value. Keys must be
// registered for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "genres.json")
	v.SetDefault("output", filepath.Join("genres", "genres_gen.go"))
	v.SetDefault("package", "")
	v.SetDefault("header", "HEADER")
	v.SetDefault("enum.enabled", false)
	v.SetDefault("enum.file", "genre_id_gen.go")
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// Load reads the config file into v and decodes the result. An explicit
// configFile must exist; otherwise genregen.* in the working directory is
// used when present.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Package == "" {
		cfg.Package = DerivePackageName(cfg.Output)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("config: input is required")
	}

	if c.Output == "" {
		return errors.New("config: output is required")
	}

	if c.Enum.Enabled && c.Enum.File == "" {
		return errors.New("config: enum.file is required when enum.enabled is set")
	}

	if c.Enum.Enabled && filepath.Base(c.Enum.File) == c.CatalogFile() {
		return errors.Newf("config: enum.file %s would overwrite the catalog", c.Enum.File)
	}

	return nil
}

// OutputDir is the directory receiving every artifact.
func (c *Config) OutputDir() string {
	return filepath.Dir(c.Output)
}

// CatalogFile is the filename of the catalog artifact.
func (c *Config) CatalogFile() string {
	return filepath.Base(c.Output)
}

// EnumFile is the filename of the enum artifact, or empty when disabled.
func (c *Config) EnumFile() string {
	if !c.Enum.Enabled {
		return ""
	}

	return filepath.Base(c.Enum.File)
}

// DerivePackageName turns the output directory name into a package name:
// lowercased, with everything but letters and digits dropped.
func DerivePackageName(output string) string {
	dir := filepath.Base(filepath.Dir(output))

	var b strings.Builder

	for _, r := range strings.ToLower(dir) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		return fallbackPackage
	}

	return name
}
