package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/gdvm/internal/engine"
)

var (
	scanClear bool
	scanPath  string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for installed versions",
	Long: `Scan a directory for engine installations and register new ones.

Every subdirectory holding a recognized engine executable is registered once.
With --clear, previously discovered versions are dropped first; manually
added versions are always kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		req := &engine.ScanRequest{Clear: scanClear}
		if scanPath != "" {
			abs, err := filepath.Abs(scanPath)
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}
			req.Root = abs
		}

		result, err := eng.Scan(cmd.Context(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(scanView(result))
		}
		printScanResult(result)
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanClear, "clear", false, "Drop previously discovered versions before scanning")
	scanCmd.Flags().StringVar(&scanPath, "path", "", "Directory to scan (default: the configured scan path)")
}

func printScanResult(result *engine.ScanResult) {
	if result.Cleared > 0 {
		PrintInfo(fmt.Sprintf("Cleared %s", PrintCount(result.Cleared, "discovered version", "discovered versions")))
	}
	for _, v := range result.Added {
		PrintSuccess(fmt.Sprintf("Added %s", v.DisplayName()))
	}
	for _, v := range result.Known {
		PrintInfo(fmt.Sprintf("Already known: %s", v.DisplayName()))
	}
	for _, s := range result.Skipped {
		PrintWarning(fmt.Sprintf("Skipped %s: %s", s.Dir, s.Reason))
	}
	PrintInfo(fmt.Sprintf("Scan of %s done, %s added", result.Root, PrintCount(len(result.Added), "version", "versions")))
}

type scanResultView struct {
	Root    string        `json:"root"`
	Cleared int           `json:"cleared"`
	Added   []versionView `json:"added"`
	Known   []versionView `json:"known"`
	Skipped []string      `json:"skipped"`
}

func scanView(result *engine.ScanResult) scanResultView {
	skipped := make([]string, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, s.Dir)
	}
	return scanResultView{
		Root:    result.Root,
		Cleared: result.Cleared,
		Added:   toViews(result.Added, false),
		Known:   toViews(result.Known, false),
		Skipped: skipped,
	}
}
