package commands

import (
	"github.com/spf13/cobra"

	"github.com/jakobhellermann/beancount-paypal/internal/dispatch"
	"github.com/jakobhellermann/beancount-paypal/internal/ledger"
)

func newImportCommand(configPath *string, verbose *bool) *cobra.Command {
	var archive bool

	cmd := &cobra.Command{
		Use:   "import <directory>",
		Short: "Extract every matching CSV in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*verbose)
			imp, err := newImporter(*configPath, logger)
			if err != nil {
				return err
			}

			dir := args[0]
			files, err := dispatch.Scan(dir)
			if err != nil {
				return err
			}

			results, err := dispatch.Dispatch(files, []dispatch.Importer{imp}, logger)
			if err != nil {
				return err
			}

			var directives []ledger.Directive
			for _, res := range results {
				directives = append(directives, res.Directives...)
			}
			if err := ledger.Render(cmd.OutOrStdout(), directives); err != nil {
				return err
			}

			if !archive {
				return nil
			}
			for _, res := range results {
				dst, err := dispatch.Archive(dir, res.File, res.Importer)
				if err != nil {
					return err
				}
				logger.Info("archived", "file", res.File.Name, "to", dst)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&archive, "archive", false, "move processed files to processed/")

	return cmd
}
