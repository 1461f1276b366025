package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

func newPartnersCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partners",
		Short: "Work with trading partners",
	}
	cmd.AddCommand(newPartnersListCommand(opts))
	return cmd
}

func newPartnersListCommand(opts *rootOptions) *cobra.Command {
	var (
		page     int
		pageSize int
		search   string
		kind     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List partners",
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
			if kind != "" {
				f.Filters["kind"] = kind
			}

			result, err := client.ListPartners(opts.ctx(cmd), f)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "CODE\tNAME\tKIND\tEMAIL\tBALANCE\tACTIVE")
			for _, p := range result.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
					p.Code, p.Name, p.Kind, p.Email, money(p.Balance, p.Currency), p.Active)
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
	cmd.Flags().StringVar(&search, "search", "", "search by code, name or contact")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (customer, vendor, both)")

	return cmd
}
