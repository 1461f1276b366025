package commands

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the core API and print the token export line",
		Long:  "login exchanges credentials for a token pair and prints an export\nline for MISOFT_TOKEN, so `eval \"$(misoft login --email ...)\"` signs the shell in.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			client, err := opts.client()
			if err != nil {
				return err
			}

			result, err := client.Login(opts.ctx(cmd), email, password)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Signed in as %s <%s>, token valid until %s\n",
				result.User.Name, result.User.Email,
				result.Tokens.AccessTokenExpiresAt.Format(time.RFC3339))
			fmt.Fprintf(cmd.OutOrStdout(), "export MISOFT_TOKEN=%s\n", result.Tokens.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")

	return cmd
}
