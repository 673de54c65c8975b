package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otifyhq/console/internal/schema"
	"github.com/otifyhq/console/internal/snapshot"
	"github.com/otifyhq/console/internal/store"
)

// CheckCmd returns the `otify check` command. It loads a snapshot
// into a fresh store set and reports what it holds, so a file can be
// validated before pointing the console at it.
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <snapshot.yaml>",
		Short: "Validate a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stores := store.NewSet()
			n, err := snapshot.ImportFile(stores, args[0])
			if err != nil {
				return fmt.Errorf("check %s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			for _, t := range schema.Types() {
				coll, err := stores.Collection(t)
				if err != nil {
					return err
				}
				if coll.Len() > 0 {
					fmt.Fprintf(out, "%-12s %d\n", schema.MustGet(t).Plural, coll.Len())
				}
			}
			fmt.Fprintf(out, "ok: %d records\n", n)
			return nil
		},
	}
}
