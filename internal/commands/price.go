package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/pricing"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/shared"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
)

// rulePageCap bounds the rule fetch the same way the dashboard does.
const rulePageCap = 25

func newPriceCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Work with pricing rules",
	}
	cmd.AddCommand(newPriceSimulateCommand(opts))
	return cmd
}

func newPriceSimulateCommand(opts *rootOptions) *cobra.Command {
	var (
		productID  string
		categoryID string
		partnerID  string
		quantity   string
		basePrice  string
		currency   string
		at         string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Preview what the active pricing rules would do to a document line",
		Long:  "simulate fetches the active rules from the core API and evaluates them\nlocally, the same way the pricing screen does. Nothing is written upstream.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := pricing.SimulationInput{
				Currency: strings.ToUpper(currency),
				At:       time.Now(),
			}

			qty, err := decimal.NewFromString(quantity)
			if err != nil || !qty.IsPositive() {
				return fmt.Errorf("invalid --quantity %q (want a positive number)", quantity)
			}
			in.Quantity = qty

			base, err := decimal.NewFromString(basePrice)
			if err != nil || base.IsNegative() {
				return fmt.Errorf("invalid --base-price %q (want a non-negative number)", basePrice)
			}
			in.BasePrice = base

			if in.ProductID, err = parseIDFlag("product", productID); err != nil {
				return err
			}
			if in.CategoryID, err = parseIDFlag("category", categoryID); err != nil {
				return err
			}
			if in.PartnerID, err = parseIDFlag("partner", partnerID); err != nil {
				return err
			}
			if at != "" {
				t, err := parseWhen(at)
				if err != nil {
					return err
				}
				in.At = t
			}

			client, err := opts.client()
			if err != nil {
				return err
			}
			rules, err := fetchActiveRules(opts, cmd, client)
			if err != nil {
				return err
			}

			result := pricing.Simulate(rules, in)
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			tw := newTable(out)
			fmt.Fprintln(tw, "RULE\tAPPLIED\tREASON")
			for _, trace := range result.Trail {
				fmt.Fprintf(tw, "%s\t%t\t%s\n", trace.RuleName, trace.Applied, trace.Reason)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "unit price %s, total %s, discount %s (%s%%)\n",
				money(result.UnitPrice, result.Currency),
				money(result.TotalPrice, result.Currency),
				result.DiscountAmount, result.DiscountPercent)
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product ID the line is for")
	cmd.Flags().StringVar(&categoryID, "category", "", "product category ID")
	cmd.Flags().StringVar(&partnerID, "partner", "", "partner ID the line is for")
	cmd.Flags().StringVar(&quantity, "quantity", "1", "line quantity")
	cmd.Flags().StringVar(&basePrice, "base-price", "", "list price per unit")
	cmd.Flags().StringVar(&currency, "currency", "", "3-letter currency code")
	cmd.Flags().StringVar(&at, "at", "", "evaluate as of this date instead of now")
	_ = cmd.MarkFlagRequired("base-price")

	return cmd
}

// fetchActiveRules pages through the active rule set in priority order,
// mirroring what the pricing screen does before it evaluates locally.
func fetchActiveRules(opts *rootOptions, cmd *cobra.Command, client *gateway.Client) ([]pricing.PriceRule, error) {
	f := shared.DefaultFilter()
	f.OrderBy = "priority"
	f.OrderDir = "asc"
	f = f.WithFilter("active", "true")

	var rules []pricing.PriceRule
	for {
		page, err := client.ListPriceRules(opts.ctx(cmd), f)
		if err != nil {
			return nil, err
		}
		rules = append(rules, page.Items...)
		if len(page.Items) == 0 || int64(len(rules)) >= page.Total || f.Page >= rulePageCap {
			break
		}
		f.Page++
	}
	return rules, nil
}
