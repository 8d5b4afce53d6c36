// i18n-keycheck verifies that every translation key a source file can
// produce exists in every configured locale document.
//
// Usage:
//
//	i18n-keycheck <subcommand> [flags]
//
// Run "i18n-keycheck --help" for a list of subcommands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "i18n-keycheck",
	Short: "Check that translation keys used in source code exist in locale documents",
	Long: `i18n-keycheck finds calls such as I18n.t('key') in JS/TS/Vue sources,
works out every key each call can produce (template placeholders are
enumerated by annotation comments), and checks each key against every
configured locale document.

Configuration is read from .i18n-keycheck.yaml (or .yml/.toml) in the
working directory or a parent, and from I18N_KEYCHECK_* variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: discovered from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(missingCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
