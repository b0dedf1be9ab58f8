package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered versions",
	Long:  `Display all registered engine versions, numbered from 1.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		versions, err := eng.Versions()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(toViews(versions, true))
		}

		if len(versions) == 0 {
			PrintEmptyState("No versions found")
			return nil
		}

		PrintSection("Installed versions")
		PrintNumberedList(displayNames(versions), 1)
		return nil
	},
}
