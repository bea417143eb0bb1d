package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jakobhellermann/beancount-paypal/internal/buildinfo"
	"github.com/jakobhellermann/beancount-paypal/internal/config"
	"github.com/jakobhellermann/beancount-paypal/internal/paypal"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "beancount-paypal",
		Short:   "Import PayPal CSV exports as beancount directives",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "paypal.yaml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newInitCommand(&configPath))
	rootCmd.AddCommand(newExtractCommand(&configPath, &verbose))
	rootCmd.AddCommand(newIdentifyCommand(&configPath, &verbose))
	rootCmd.AddCommand(newImportCommand(&configPath, &verbose))

	return rootCmd
}

// newLogger builds the CLI logger; debug level when verbose.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "beancount-paypal",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newImporter loads the config file and wires an importer from it.
func newImporter(configPath string, logger *log.Logger) (*paypal.Importer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	profile, err := cfg.Profile()
	if err != nil {
		return nil, err
	}
	return paypal.New(paypal.Config{
		Account:           cfg.Accounts.PayPal,
		CheckingAccount:   cfg.Accounts.Checking,
		CommissionAccount: cfg.Accounts.Commission,
		FixmeAccount:      cfg.Accounts.Fixme,
		Locale:            profile,
		Metadata:          cfg.Metadata,
	}, logger), nil
}
