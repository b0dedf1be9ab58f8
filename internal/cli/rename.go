package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <number> [nickname]",
	Short: "Set or clear the nickname of a version",
	Long: `Set the nickname shown next to a version. Omit the nickname to clear it.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		nickname := ""
		if len(args) == 2 {
			nickname = strings.TrimSpace(args[1])
		}

		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		v, err := eng.Rename(index, nickname)
		if err != nil {
			return err
		}
		if nickname == "" {
			PrintSuccess(fmt.Sprintf("Cleared nickname of %s", v.DisplayName()))
			return nil
		}
		PrintSuccess(fmt.Sprintf("Renamed to %s", v.DisplayName()))
		return nil
	},
}
