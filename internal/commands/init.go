package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakobhellermann/beancount-paypal/internal/config"
)

func newInitCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(*configPath); err == nil {
				return fmt.Errorf("%s already exists", *configPath)
			}
			if err := config.Save(*configPath, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", *configPath)
			return nil
		},
	}
}
