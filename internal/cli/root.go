// Package cli wires the generator into a cobra command tree.
package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genre-generator/internal/config"
	"genre-generator/internal/logger"
	"genre-generator/internal/pipeline"
)

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"input":     "input",
	"output":    "output",
	"package":   "package",
	"header":    "header",
	"enum":      "enum.enabled",
	"verbose":   "log.verbose",
	"json-logs": "log.json",
}

// app carries state shared by the command tree.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
}

// NewRootCmd builds the command tree. Running the root command generates
// the catalog.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "genre-generator",
		Short: "Generate the genre catalog from genres.json",
		Long: `Generate a Go catalog of music genres from a two-level taxonomy.

The taxonomy (JSON or YAML) is flattened into one entry per genre and
subgenre. Every entry gets a native token derived from its id, and the
result is written as Go source with lookup functions.

Settings come from defaults, genregen.toml or genregen.yaml in the working
directory (or --config), GENREGEN_* environment variables and flags, in
increasing precedence.

Examples:
  genre-generator                          # genres.json -> genres/genres_gen.go
  genre-generator --enum                   # also emit genres/genre_id_gen.go
  genre-generator -i data/genres.yaml -o pkg/genres/genres_gen.go
  genre-generator check                    # fail when the artifacts are stale
  genre-generator list trap                # show one entry`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runGenerate,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: genregen.{toml,yaml} if present)")
	flags.StringP("input", "i", "", "Taxonomy document (default: genres.json)")
	flags.StringP("output", "o", "", "Catalog artifact path (default: genres/genres_gen.go)")
	flags.StringP("package", "p", "", "Generated package name (default: output directory name)")
	flags.String("header", "", "License header file, skipped when missing (default: HEADER)")
	flags.Bool("enum", false, "Also emit the GenreID enumeration")
	flags.BoolP("verbose", "v", false, "Debug logging")
	flags.Bool("json-logs", false, "JSON logging")

	for flag, key := range flagKeys {
		// Lookup cannot fail for flags registered above.
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(newCheckCmd(a), newListCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}

	if err := logger.Initialize(logger.Options{JSON: cfg.Log.JSON, Verbose: cfg.Log.Verbose}); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	a.cfg = cfg

	return nil
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	_, err := pipeline.Run(a.cfg)

	return err
}
