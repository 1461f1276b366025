package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
)

func newInvoicesCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Work with sale and purchase invoices",
	}
	cmd.AddCommand(newInvoicesListCommand(opts))
	return cmd
}

func newInvoicesListCommand(opts *rootOptions) *cobra.Command {
	var (
		page      int
		pageSize  int
		search    string
		kind      string
		status    string
		partnerID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
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
			if status != "" {
				f.Filters["status"] = status
			}
			if id, err := parseIDFlag("partner-id", partnerID); err != nil {
				return err
			} else if id != nil {
				f.Filters["partner_id"] = id.String()
			}

			result, err := client.ListInvoices(opts.ctx(cmd), f)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "NUMBER\tKIND\tDATE\tPARTNER\tTOTAL\tDUE\tSTATUS")
			for _, inv := range result.Items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					inv.Number, inv.Kind, inv.Date.Format("2006-01-02"), inv.PartnerName,
					money(inv.Total, inv.Currency), inv.AmountDue, inv.Status)
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
	cmd.Flags().StringVar(&search, "search", "", "search by number or partner")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by kind (sale, purchase)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, confirmed, partially_paid, paid, cancelled)")
	cmd.Flags().StringVar(&partnerID, "partner-id", "", "filter by partner ID")

	return cmd
}
