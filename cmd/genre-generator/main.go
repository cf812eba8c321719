// Command genre-generator turns a genre taxonomy into a generated Go catalog.
//
// It is meant to run as a build step:
//
//	//go:generate go run genre-generator/cmd/genre-generator
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"genre-generator/internal/cli"
	"genre-generator/internal/logger"
)

func main() {
	err := cli.NewRootCmd().Execute()

	logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}

		os.Exit(1)
	}
}
