package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otifyhq/console/internal/schema"
)

// SchemaCmd returns the `otify schema` command, which prints the
// entity catalog: every section's form fields and table columns.
func SchemaCmd() *cobra.Command {
	var onlyType string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the entity catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			types := schema.Types()
			if onlyType != "" {
				if _, err := schema.Get(onlyType); err != nil {
					return err
				}
				types = []string{onlyType}
			}
			out := cmd.OutOrStdout()
			for i, t := range types {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printSchema(out, schema.MustGet(t))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&onlyType, "type", "", "limit output to one entity type")
	return cmd
}

func printSchema(out io.Writer, s *schema.Schema) {
	fmt.Fprintf(out, "%s (%s)\n", s.Plural, s.Type)
	fmt.Fprintln(out, "  fields:")
	for _, f := range s.Fields {
		line := fmt.Sprintf("    %-28s %s", f.Name, f.Kind)
		if f.Required {
			line += " required"
		}
		if len(f.Options) > 0 {
			line += " [" + strings.Join(f.Options, ", ") + "]"
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, "  columns:")
	for _, c := range s.Columns {
		fmt.Fprintf(out, "    %-28s %q\n", c.Key, c.Label)
	}
}
