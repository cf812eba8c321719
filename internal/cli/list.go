package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"genre-generator/internal/catalog"
	"genre-generator/internal/naming"
	"genre-generator/internal/taxonomy"
)

// ErrUnknownID is returned by list for an id not in the catalog.
var ErrUnknownID = errors.New("unknown genre id")

const listSuggestions = 3

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [id]",
		Short: "Print the catalog hierarchy or a single entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := taxonomy.LoadFile(a.cfg.Input)
			if err != nil {
				return err
			}

			entries := catalog.Flatten(doc.Genres)
			if _, err := catalog.ValidateError(entries, catalog.ValidateOptions{}); err != nil {
				return err
			}

			idx := catalog.NewIndex(entries)
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				printHierarchy(out, idx.Hierarchy())

				return nil
			}

			entry, ok := idx.Lookup(args[0])
			if !ok {
				err := errors.Mark(errors.Newf("unknown genre id %q", args[0]), ErrUnknownID)
				if suggestions := naming.Suggest(args[0], idx.IDs(), listSuggestions); len(suggestions) > 0 {
					err = errors.WithHintf(err, "did you mean %s?", joinQuoted(suggestions))
				}

				return err
			}

			printEntry(out, entry)

			return nil
		},
	}
}

func printHierarchy(out io.Writer, nodes []catalog.Node) {
	for _, node := range nodes {
		fmt.Fprintf(out, "%s (%s)\n", node.Genre.Name, node.Genre.ID)

		for _, sub := range node.Subgenres {
			fmt.Fprintf(out, "  %s (%s)\n", sub.Name, sub.ID)
		}
	}
}

func printEntry(out io.Writer, e catalog.Entry) {
	fmt.Fprintf(out, "id:     %s\n", e.ID)
	fmt.Fprintf(out, "name:   %s\n", e.Name)
	fmt.Fprintf(out, "type:   %s\n", e.Kind)

	if e.HasParent() {
		fmt.Fprintf(out, "parent: %s\n", e.ParentID)
	}

	fmt.Fprintf(out, "token:  %s\n", e.NativeToken)
}

func joinQuoted(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = fmt.Sprintf("%q", id)
	}

	return strings.Join(quoted, ", ")
}
