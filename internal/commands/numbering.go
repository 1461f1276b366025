package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mastersapp "github.com/aamirshehzad9/MISoft-sub001/internal/application/masters"
	"github.com/aamirshehzad9/MISoft-sub001/internal/domain/masters"
)

func newNumberingCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numbering",
		Short: "Work with document numbering schemes",
	}
	cmd.AddCommand(newNumberingPreviewCommand(opts))
	return cmd
}

func newNumberingPreviewCommand(opts *rootOptions) *cobra.Command {
	var (
		schemeID  string
		prefix    string
		dateFmt   string
		padding   int
		next      int64
		suffix    string
		separator string
		at        string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the next document number a scheme would produce",
		Long:  "preview builds the number locally, the same way the dashboard does.\nPass --scheme to fetch a saved scheme from the core API, or describe one inline.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when := time.Now()
			if at != "" {
				t, err := parseWhen(at)
				if err != nil {
					return err
				}
				when = t
			}

			scheme := masters.NumberingScheme{
				Prefix:          prefix,
				DateFormat:      dateFmt,
				SequencePadding: padding,
				NextNumber:      next,
				Suffix:          suffix,
				Separator:       separator,
			}
			if schemeID != "" {
				id, err := parseIDFlag("scheme", schemeID)
				if err != nil {
					return err
				}
				client, err := opts.client()
				if err != nil {
					return err
				}
				fetched, err := client.GetNumberingScheme(opts.ctx(cmd), *id)
				if err != nil {
					return err
				}
				scheme = *fetched
			}

			number := scheme.Preview(when)
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), mastersapp.PreviewNumberingResponse{
					Number: number,
					At:     when,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), number)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemeID, "scheme", "", "saved scheme ID to preview (overrides inline flags)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "number prefix, e.g. INV")
	cmd.Flags().StringVar(&dateFmt, "date-format", "", "date part layout (2006, 200601 or 20060102)")
	cmd.Flags().IntVar(&padding, "padding", 0, "zero-pad the sequence to this width")
	cmd.Flags().Int64Var(&next, "next", 1, "sequence number to preview")
	cmd.Flags().StringVar(&suffix, "suffix", "", "number suffix")
	cmd.Flags().StringVar(&separator, "separator", "", "part separator (default \"-\")")
	cmd.Flags().StringVar(&at, "at", "", "preview as of this date instead of now")

	return cmd
}
