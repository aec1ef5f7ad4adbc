package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"parts-service/internal/catalog"
	"parts-service/internal/domain"
	"parts-service/internal/inventory"

	"github.com/spf13/cobra"
)

func loadInventory() (*inventory.Manager, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	return inventory.NewManager(c), nil
}

func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search parts that are in stock somewhere",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := loadInventory()
			if err != nil {
				return err
			}
			hits := inv.SearchPartsWithListings(strings.Join(args, " "))
			return render(cmd.OutOrStdout(), rootOpts.Format, hits, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tPART\tNUMBER\tFROM\tVENDORS")
				for _, h := range hits {
					fmt.Fprintf(tw, "#%d\t%s\t%s\t%s %s\t%d\n",
						h.Part.ID, h.Part.Name, h.Part.PartNumber,
						domain.DefaultCurrency, h.LowestPrice.StringFixed(2), h.VendorCount)
				}
			})
		},
	}
}

func NewListingsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "listings <vendor-id> [query]",
		Short: "Show a vendor's listings",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vendorID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid vendor id %q", args[0])
			}
			inv, err := loadInventory()
			if err != nil {
				return err
			}
			if inv.GetVendor(vendorID) == nil {
				return fmt.Errorf("vendor %d not found", vendorID)
			}
			query := ""
			if len(args) == 2 {
				query = args[1]
			}

			listings := inv.SearchVendorListings(vendorID, query)
			return render(cmd.OutOrStdout(), rootOpts.Format, listings, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tBRAND\tNUMBER\tPRICE\tSTOCK")
				for _, l := range listings {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s %s\t%d\n",
						l.ID, l.BrandName, l.PartNumber, l.Currency, l.Price.StringFixed(2), l.StockQuantity)
				}
			})
		},
	}
}
