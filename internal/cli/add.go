package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gdvm/internal/engine"
	"github.com/danieljhkim/gdvm/internal/registry"
)

var (
	addExecutable string
	addNickname   string
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Register an installation by hand",
	Long: `Register an installation directory without scanning it.

The version is taken from the folder name: "Godot_v4.2-stable_win64" is
registered as "v4.2-stable". Manually added versions survive "scan --clear".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}

		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.AddManual(cmd.Context(), &engine.AddManualRequest{
			Path:       path,
			Executable: addExecutable,
			Nickname:   addNickname,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(toViews([]registry.Version{result.Version}, false)[0])
		}

		if !result.Added {
			PrintWarning(fmt.Sprintf("%s is already registered", path))
			return nil
		}
		PrintSuccess(fmt.Sprintf("Added %s", result.Version.DisplayName()))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addExecutable, "executable", "", "Executable file name (default: folder name plus platform suffix)")
	addCmd.Flags().StringVar(&addNickname, "nickname", "", "Nickname shown next to the version")
}
