package cli

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"parts-service/internal/catalog"
	"parts-service/internal/domain"
	"parts-service/internal/infra"
	"parts-service/internal/infra/vpic"
	"parts-service/internal/vehicle"

	"github.com/spf13/cobra"
)

const remoteTimeout = 10 * time.Second

// newVehicleService builds the same source chain the server uses: local
// table, remote API (only with --remote), fixtures. The returned func closes
// the local table.
func newVehicleService(opts *RootOptions) (*vehicle.Service, func(), error) {
	inv, err := loadInventory()
	if err != nil {
		return nil, nil, err
	}
	fixtures, err := catalog.LoadVehicles()
	if err != nil {
		return nil, nil, err
	}

	var sources []vehicle.Source
	closeFn := func() {}
	if opts.VpicDB != "" {
		store, err := vpic.Open(opts.VpicDB)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, store)
		closeFn = func() { store.Close() }
	}
	if opts.Remote {
		sources = append(sources, vehicle.NewRemoteSource(infra.NewVehicleClient(opts.APIURL, remoteTimeout)))
	}
	sources = append(sources, vehicle.NewMockSource(fixtures))
	return vehicle.NewService(inv, sources...), closeFn, nil
}

func intArgs(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func NewVehiclesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "Browse vehicle makes, models and engines",
	}
	cmd.AddCommand(newSourceCommand(rootOpts))
	cmd.AddCommand(newMakesCommand(rootOpts))
	cmd.AddCommand(newModelsCommand(rootOpts))
	cmd.AddCommand(newEnginesCommand(rootOpts))
	return cmd
}

func newSourceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "source",
		Short: "Print which vehicle source answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := newVehicleService(rootOpts)
			if err != nil {
				return err
			}
			defer closeFn()

			name, err := svc.SourceName(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), rootOpts.Format, map[string]string{"source": name}, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, name)
			})
		},
	}
}

func newMakesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "makes",
		Short: "List vehicle makes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := newVehicleService(rootOpts)
			if err != nil {
				return err
			}
			defer closeFn()

			makes, err := svc.GetMakes(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), rootOpts.Format, makes, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tMAKE")
				for _, m := range makes {
					fmt.Fprintf(tw, "%d\t%s\n", m.ID, m.Name)
				}
			})
		},
	}
}

func newModelsCommand(rootOpts *RootOptions) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "models <make-id>",
		Short: "List a make's models",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := intArgs(args)
			if err != nil {
				return err
			}
			svc, closeFn, err := newVehicleService(rootOpts)
			if err != nil {
				return err
			}
			defer closeFn()

			var models []domain.VehicleModel
			if year > 0 {
				models, err = svc.GetModelsForMakeAndYear(cmd.Context(), ids[0], year)
			} else {
				models, err = svc.GetModelsForMake(cmd.Context(), ids[0])
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), rootOpts.Format, models, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tMODEL\tYEAR")
				for _, m := range models {
					fmt.Fprintf(tw, "%d\t%s\t%d\n", m.ID, m.Name, m.Year)
				}
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "only models sold in this model year")
	return cmd
}

func newEnginesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "engines <make-id> <year> <model-id>",
		Short: "List engine options for a model year",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := intArgs(args)
			if err != nil {
				return err
			}
			svc, closeFn, err := newVehicleService(rootOpts)
			if err != nil {
				return err
			}
			defer closeFn()

			engines, err := svc.GetEnginesForModel(cmd.Context(), ids[0], ids[1], ids[2])
			if err != nil {
				return err
			}
			if len(engines) == 0 {
				return errors.New("no engines found")
			}
			return render(cmd.OutOrStdout(), rootOpts.Format, engines, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tENGINE")
				for _, e := range engines {
					fmt.Fprintf(tw, "%d\t%s\n", e.ID, e.Description)
				}
			})
		},
	}
}
