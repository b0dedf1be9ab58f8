package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gdvm/internal/engine"
)

var (
	scanPathRescan bool
	scanPathClear  bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long:  `Show or change the registry settings stored in the gdvm config document.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		status, err := eng.Status()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(struct {
				RegistryPath string `json:"registryPath"`
				UseSession   bool   `json:"useSession"`
				ScanPath     string `json:"scanPath"`
				Versions     int    `json:"versions"`
			}{status.RegistryPath, status.UseSession, status.ScanPath, len(status.Versions)})
		}

		PrintSection("Settings")
		PrintLabelValue("Config", status.RegistryPath)
		PrintLabelValue("Steam hours", sessionState(status.UseSession))
		PrintLabelValue("Scan path", status.ScanPath)
		PrintLabelValue("Versions", strconv.Itoa(len(status.Versions)))
		return nil
	},
}

var settingsToggleSessionCmd = &cobra.Command{
	Use:   "toggle-session",
	Short: "Toggle counting Steam hours on launch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		enabled, err := eng.ToggleSession()
		if err != nil {
			return err
		}
		PrintSuccess("Steam hours are now " + sessionState(enabled))
		return nil
	},
}

var settingsScanPathCmd = &cobra.Command{
	Use:   "scan-path <path>",
	Short: "Change the scan path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}

		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.SetScanPath(cmd.Context(), &engine.SetScanPathRequest{
			Path:   path,
			Rescan: scanPathRescan,
			Clear:  scanPathClear,
		})
		if err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Scan path set to %s", path))
		if result != nil {
			printScanResult(result)
		}
		return nil
	},
}

func init() {
	settingsScanPathCmd.Flags().BoolVar(&scanPathRescan, "rescan", false, "Scan the new path afterwards")
	settingsScanPathCmd.Flags().BoolVar(&scanPathClear, "clear", false, "Drop previously discovered versions before the rescan")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsToggleSessionCmd)
	settingsCmd.AddCommand(settingsScanPathCmd)
}

func sessionState(enabled bool) string {
	if enabled {
		return "being counted"
	}
	return "not counted"
}
