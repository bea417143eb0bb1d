package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakobhellermann/beancount-paypal/internal/ledger"
)

func newExtractCommand(configPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file.csv>",
		Short: "Extract directives from a PayPal export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			imp, err := newImporter(*configPath, logger)
			if err != nil {
				return err
			}

			path := args[0]
			if !imp.Identify(path) {
				return fmt.Errorf("%s does not match the configured locale", path)
			}

			directives, err := imp.Extract(path, nil)
			if err != nil {
				return err
			}
			return ledger.Render(cmd.OutOrStdout(), directives)
		},
	}
}
