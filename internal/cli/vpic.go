package cli

import (
	"fmt"
	"text/tabwriter"

	"parts-service/internal/infra/vpic"

	"github.com/spf13/cobra"
)

func NewVpicCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vpic",
		Short: "Manage the local vehicle lookup table",
	}
	cmd.AddCommand(newVpicInitCommand(rootOpts))
	return cmd
}

// newVpicInitCommand creates an empty lookup table, ready to be loaded from a
// vPIC extract. Running it on an existing table leaves its rows alone.
func newVpicInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init <path>",
		Short: "Create a lookup table with the expected schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := vpic.Create(args[0])
			if err != nil {
				return err
			}
			if err := store.Close(); err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), rootOpts.Format, map[string]string{"path": args[0]}, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "created %s\n", args[0])
			})
		},
	}
}
