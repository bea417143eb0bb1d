package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIdentifyCommand(configPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <file.csv>...",
		Short: "Report which files match the configured locale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			imp, err := newImporter(*configPath, logger)
			if err != nil {
				return err
			}

			for _, path := range args {
				verdict := "no"
				if imp.Identify(path) {
					verdict = "yes"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", verdict, path)
			}
			return nil
		},
	}
}
