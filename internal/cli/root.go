// Package cli implements partsctl, an offline browser for the parts catalog
// and the vehicle taxonomy sources.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	VpicDB string
	Remote bool
	APIURL string
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "partsctl",
		Short: "Browse the parts catalog from the command line",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.VpicDB, "vpic-db", "", "path to a local vehicle lookup table")
	cmd.PersistentFlags().BoolVar(&opts.Remote, "remote", false, "query the public vehicle API before falling back to fixtures")
	cmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "https://vpic.nhtsa.dot.gov/api/vehicles", "vehicle API base URL")

	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewListingsCommand(opts))
	cmd.AddCommand(NewVehiclesCommand(opts))
	cmd.AddCommand(NewVpicCommand(opts))

	return cmd
}
