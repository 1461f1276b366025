package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

func newProductsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Work with the product catalog",
	}
	cmd.AddCommand(newProductsListCommand(opts))
	return cmd
}

func newProductsListCommand(opts *rootOptions) *cobra.Command {
	var (
		page     int
		pageSize int
		search   string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			f := shared.DefaultFilter()
			f.Page = page
			f.PageSize = pageSize
			f.Search = search
			if status != "" {
				f.Filters["status"] = status
			}

			result, err := client.ListProducts(opts.ctx(cmd), f)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "CODE\tNAME\tUNIT\tSALE PRICE\tSTATUS")
			for _, p := range result.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					p.Code, p.Name, p.Unit, p.SalePrice, p.Status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			printPageFooter(cmd.OutOrStdout(), result.Page, result.TotalPages, result.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "page size")
	cmd.Flags().StringVar(&search, "search", "", "search by code, name or barcode")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (active, inactive, discontinued)")

	return cmd
}
