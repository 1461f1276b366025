// Package commands implements the misoft CLI command tree. The CLI talks to
// the core API directly through the same gateway client the dashboard uses;
// tokens come from MISOFT_TOKEN or --token and are attached per request.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/config"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/gateway"
	"github.com/aamirshehzad9/MISoft-sub001/internal/infrastructure/logger"
)

const (
	apiEnv   = "MISOFT_API"
	tokenEnv = "MISOFT_TOKEN"
)

var errNoAPI = errors.New("core API base URL not set (use --api or MISOFT_API)")

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	api     string
	token   string
	timeout time.Duration
	asJSON  bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(version, commit string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "misoft",
		Short:   "Command-line client for the MISoft core API",
		Long:    "misoft lists and previews MISoft data from the terminal.\nSign in with `misoft login` and export the printed token, or pass --token.",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.api, "api", os.Getenv(apiEnv), "core API base URL")
	flags.StringVar(&opts.token, "token", os.Getenv(tokenEnv), "core API access token")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	flags.BoolVar(&opts.asJSON, "json", false, "print raw JSON instead of tables")

	rootCmd.AddCommand(
		newLoginCommand(opts),
		newPartnersCommand(opts),
		newProductsCommand(opts),
		newInvoicesCommand(opts),
		newNumberingCommand(opts),
		newPriceCommand(opts),
		newVersionCommand(version, commit),
	)

	return rootCmd
}

// client builds a core API client from the persistent flags. Commands that
// never touch the network (numbering preview from inline flags, version)
// don't call this, so a missing base URL only fails where it matters.
func (o *rootOptions) client() (*gateway.Client, error) {
	if o.api == "" {
		return nil, errNoAPI
	}
	return gateway.New(config.UpstreamConfig{
		BaseURL:      o.api,
		Timeout:      o.timeout,
		RetryCount:   2,
		RetryWait:    500 * time.Millisecond,
		RetryMaxWait: 5 * time.Second,
		UserAgent:    "misoft-cli",
	}, quietLogger()), nil
}

// ctx returns the command context with the token attached, if one is set.
func (o *rootOptions) ctx(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.token != "" {
		ctx = gateway.WithToken(ctx, o.token)
	}
	return ctx
}

// quietLogger keeps gateway noise (retry warnings, upstream errors) on
// stderr without timestamps drowning the actual output.
func quietLogger() *zap.Logger {
	log, err := logger.New(&logger.Config{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	})
	if err != nil {
		return zap.NewNop()
	}
	return log
}
