package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/gdvm/internal/engine"
	"github.com/danieljhkim/gdvm/internal/registry"
)

// setupTestEnv points gdvm at a temporary root and returns it.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("GDVM_ROOT", root)
	t.Setenv("GDVM_CONFIG", "")
	t.Setenv("GDVM_LOG_LEVEL", "")
	return root
}

// execute runs the root command and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	jsonOutput = false
	scanClear, scanPath = false, ""
	addExecutable, addNickname = "", ""
	scanPathRescan, scanPathClear = false, false

	bufOut, bufErr := captureOutput(t)

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(bufOut)
	rootCmd.SetErr(bufErr)
	err := rootCmd.Execute()
	return bufOut.String(), err
}

func mkInstall(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	return dir
}

func listJSON(t *testing.T) []versionView {
	t.Helper()
	out, err := execute(t, "list", "--json")
	if err != nil {
		t.Fatalf("list --json error = %v", err)
	}
	var views []versionView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("Failed to parse JSON output %q: %v", out, err)
	}
	return views
}

func TestListCommand_NoVersions(t *testing.T) {
	root := setupTestEnv(t)

	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !contains(out, "No versions found") {
		t.Errorf("expected empty state, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "config.toml")); err != nil {
		t.Errorf("expected default config document: %v", err)
	}
}

func TestAddCommand_ThenList(t *testing.T) {
	root := setupTestEnv(t)
	dir := mkInstall(t, root, "manual", "Godot_v4.2-stable_mono")

	out, err := execute(t, "add", dir, "--nickname", "work")
	if err != nil {
		t.Fatalf("add error = %v", err)
	}
	if !contains(out, "Added v4.2-stable (Runtime) - work") {
		t.Errorf("unexpected add output %q", out)
	}

	views := listJSON(t)
	if len(views) != 1 {
		t.Fatalf("expected 1 version, got %d", len(views))
	}
	v := views[0]
	if v.Number != 1 || v.Version != "v4.2-stable" || !v.IsManual || v.Nickname != "work" || v.Path != dir {
		t.Errorf("unexpected version %+v", v)
	}

	out, err = execute(t, "add", dir)
	if err != nil {
		t.Fatalf("second add error = %v", err)
	}
	if !contains(out, "already registered") {
		t.Errorf("expected duplicate warning, got %q", out)
	}
}

func TestAddCommand_Errors(t *testing.T) {
	root := setupTestEnv(t)
	noVersion := mkInstall(t, root, "Godot")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"missing path", []string{"add", filepath.Join(root, "missing_v1")}, engine.ErrNotFound},
		{"no version part", []string{"add", noVersion}, engine.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenameCommand(t *testing.T) {
	root := setupTestEnv(t)
	dir := mkInstall(t, root, "Godot_v4.1_linux")
	if _, err := execute(t, "add", dir); err != nil {
		t.Fatalf("add error = %v", err)
	}

	if _, err := execute(t, "rename", "1", "fav"); err != nil {
		t.Fatalf("rename error = %v", err)
	}
	if got := listJSON(t)[0].Nickname; got != "fav" {
		t.Errorf("Nickname = %q, want %q", got, "fav")
	}

	if _, err := execute(t, "rename", "1"); err != nil {
		t.Fatalf("rename error = %v", err)
	}
	if got := listJSON(t)[0].Nickname; got != "" {
		t.Errorf("Nickname = %q, want cleared", got)
	}
}

func TestRenameCommand_OutOfRange(t *testing.T) {
	setupTestEnv(t)

	_, err := execute(t, "rename", "1", "fav")
	if !errors.Is(err, registry.ErrOutOfRange) {
		t.Errorf("Execute() error = %v, want ErrOutOfRange", err)
	}
}

func TestRunCommand_InvalidArgs(t *testing.T) {
	setupTestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{"run"}},
		{"not a number", []string{"run", "abc"}},
		{"out of range", []string{"run", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSettingsCommands(t *testing.T) {
	root := setupTestEnv(t)

	if _, err := execute(t, "settings", "toggle-session"); err != nil {
		t.Fatalf("toggle-session error = %v", err)
	}

	next := mkInstall(t, root, "engines")
	if _, err := execute(t, "settings", "scan-path", next); err != nil {
		t.Fatalf("scan-path error = %v", err)
	}

	out, err := execute(t, "settings", "show", "--json")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	var shown struct {
		UseSession bool   `json:"useSession"`
		ScanPath   string `json:"scanPath"`
	}
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("Failed to parse JSON output %q: %v", out, err)
	}
	if shown.UseSession {
		t.Error("expected session to be disabled")
	}
	if shown.ScanPath != next {
		t.Errorf("ScanPath = %s, want %s", shown.ScanPath, next)
	}
}

func TestSettingsScanPath_Missing(t *testing.T) {
	root := setupTestEnv(t)

	_, err := execute(t, "settings", "scan-path", filepath.Join(root, "missing"))
	if !errors.Is(err, engine.ErrNotFound) {
		t.Errorf("Execute() error = %v, want ErrNotFound", err)
	}
}

func TestConfigFlagOverridesDocumentPath(t *testing.T) {
	root := setupTestEnv(t)
	doc := filepath.Join(root, "custom.toml")

	if _, err := execute(t, "list", "--config", doc); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if _, err := os.Stat(doc); err != nil {
		t.Errorf("expected document at %s: %v", doc, err)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	setupTestEnv(t)

	_, err := execute(t, "list", "--log-level", "loud")
	if err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestRootCommand_OpensMenu(t *testing.T) {
	setupTestEnv(t)
	SetVersion("9.9.9")
	rootCmd.SetIn(strings.NewReader("q\n"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	out, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Godot Version Manager - 9.9.9", "Q. Quit"} {
		if !contains(out, want) {
			t.Errorf("expected menu output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	setupTestEnv(t)
	SetVersion("9.9.9")

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !contains(out, "9.9.9") {
		t.Errorf("expected version output, got %q", out)
	}
}
