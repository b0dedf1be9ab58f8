package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <number>",
	Short: "Launch a registered version",
	Long: `Launch the version with the given list number and wait for it to exit.

The editor starts in its install directory with "--path . --verbose". When
session tracking is on, the launch is wrapped in a Steam session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		v, err := eng.Run(cmd.Context(), index)
		if err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("%s exited", v.DisplayName()))
		return nil
	},
}
