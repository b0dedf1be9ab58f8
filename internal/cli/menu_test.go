package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/gdvm/internal/discovery"
	"github.com/danieljhkim/gdvm/internal/engine"
	"github.com/danieljhkim/gdvm/internal/fsops"
	"github.com/danieljhkim/gdvm/internal/registry"
	"github.com/danieljhkim/gdvm/internal/session"
)

// --- Mocks ---

type menuScanner struct {
	fs         fsops.FS
	candidates []registry.Version
}

func (s *menuScanner) Scan(ctx context.Context, root string) (*discovery.Result, error) {
	if ok, _ := s.fs.IsDir(root); !ok {
		return nil, discovery.ErrNotFound
	}
	return &discovery.Result{Candidates: s.candidates}, nil
}

type menuLauncher struct {
	launched []registry.Version
}

func (l *menuLauncher) Launch(v registry.Version, sess session.Session) error {
	l.launched = append(l.launched, v)
	return nil
}

type menuFixture struct {
	root     string
	scanRoot string
	scanner  *menuScanner
	launcher *menuLauncher
	engine   *engine.Engine
}

func newMenuFixture(t *testing.T, seed ...registry.Version) *menuFixture {
	t.Helper()
	root := t.TempDir()
	scanRoot := filepath.Join(root, "Versions")
	if err := os.MkdirAll(scanRoot, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	fs := fsops.NewRealFS()
	logger := log.New(io.Discard)
	f := &menuFixture{
		root:     root,
		scanRoot: scanRoot,
		scanner:  &menuScanner{fs: fs, candidates: seed},
		launcher: &menuLauncher{},
	}
	repo := registry.NewFileRepo(fs, filepath.Join(root, "config.toml"), scanRoot, logger)
	f.engine = engine.New(fs, repo, f.scanner, f.launcher, nil, ".exe", logger)
	if err := f.engine.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return f
}

func (f *menuFixture) run(t *testing.T, lines ...string) string {
	t.Helper()
	bufOut, _ := captureOutput(t)
	input := strings.Join(lines, "\n") + "\n"
	if err := newMenu(f.engine, strings.NewReader(input), "v1.0").Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return bufOut.String()
}

func seedVersion(f string) registry.Version {
	return registry.NewVersion("4.2.stable", f, "Godot_v4.2_win64.exe", false, "")
}

func TestMenu_ShowsHeaderAndQuits(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "q")

	for _, want := range []string{
		"Godot Version Manager - v1.0",
		"Steam hours are being counted.",
		"R. Rescan for versions",
		"X. Change settings",
		"Q. Quit",
	} {
		if !contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestMenu_EndOfInput(t *testing.T) {
	f := newMenuFixture(t)

	bufOut, _ := captureOutput(t)
	if err := newMenu(f.engine, strings.NewReader(""), "dev").Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !contains(bufOut.String(), "Q. Quit") {
		t.Error("expected menu to be shown once")
	}
}

func TestMenu_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"unknown command", []string{"zzz", "q"}, "Invalid input."},
		{"number out of range", []string{"5", "q"}, "Invalid version number."},
		{"zero", []string{"0", "q"}, "Invalid version number."},
		{"unknown setting", []string{"x", "9", "q", "q"}, "Invalid input."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMenuFixture(t)
			if out := f.run(t, tt.lines...); !contains(out, tt.want) {
				t.Errorf("expected %q, got:\n%s", tt.want, out)
			}
		})
	}
}

func TestMenu_LaunchesByNumber(t *testing.T) {
	f := newMenuFixture(t)
	install := filepath.Join(f.scanRoot, "Godot_v4.2_win64")
	f.scanner.candidates = []registry.Version{seedVersion(install)}
	if _, err := f.engine.Scan(context.Background(), &engine.ScanRequest{}); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	out := f.run(t, "1", "q")

	if len(f.launcher.launched) != 1 || f.launcher.launched[0].Path != install {
		t.Errorf("expected launch of %s, got %+v", install, f.launcher.launched)
	}
	if !contains(out, "1. 4.2.stable") {
		t.Errorf("expected numbered version in output:\n%s", out)
	}
}

func TestMenu_Rescan(t *testing.T) {
	f := newMenuFixture(t)
	f.scanner.candidates = []registry.Version{seedVersion(filepath.Join(f.scanRoot, "Godot_v4.2_win64"))}

	out := f.run(t, "r", "y", "q")

	if !contains(out, "Done!") {
		t.Errorf("expected rescan to finish, got:\n%s", out)
	}
	versions, _ := f.engine.Versions()
	if len(versions) != 1 {
		t.Errorf("expected 1 version after rescan, got %d", len(versions))
	}
}

func TestMenu_RescanMissingPath(t *testing.T) {
	f := newMenuFixture(t)
	if err := os.Remove(f.scanRoot); err != nil {
		t.Fatalf("remove: %v", err)
	}

	out := f.run(t, "r", "q")

	if !contains(out, "Scan path not found, please update it in settings.") {
		t.Errorf("expected missing path warning, got:\n%s", out)
	}
}

func TestMenu_ToggleSession(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "x", "1", "q", "q")

	if !contains(out, "Steam hours are now not counted.") {
		t.Errorf("expected toggle message, got:\n%s", out)
	}
	status, _ := f.engine.Status()
	if status.UseSession {
		t.Error("expected session to be disabled")
	}
}

func TestMenu_ChangeScanPath(t *testing.T) {
	f := newMenuFixture(t)
	next := filepath.Join(f.root, "engines")
	if err := os.MkdirAll(next, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f.scanner.candidates = []registry.Version{seedVersion(filepath.Join(next, "Godot_v4.2_win64"))}

	out := f.run(t, "x", "2", next, "n", "q", "q")

	if !contains(out, "Done!") {
		t.Errorf("expected rescan after path change, got:\n%s", out)
	}
	status, _ := f.engine.Status()
	if status.ScanPath != next {
		t.Errorf("ScanPath = %s, want %s", status.ScanPath, next)
	}
	if len(status.Versions) != 1 {
		t.Errorf("expected 1 version, got %d", len(status.Versions))
	}
}

func TestMenu_ChangeScanPathMissing(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "x", "2", filepath.Join(f.root, "missing"), "q", "q")

	if !contains(out, "Scan path not found, please choose some place that exists.") {
		t.Errorf("expected missing path warning, got:\n%s", out)
	}
	status, _ := f.engine.Status()
	if status.ScanPath != f.scanRoot {
		t.Errorf("ScanPath changed to %s", status.ScanPath)
	}
}

func TestMenu_Rename(t *testing.T) {
	f := newMenuFixture(t)
	f.scanner.candidates = []registry.Version{seedVersion(filepath.Join(f.scanRoot, "Godot_v4.2_win64"))}
	if _, err := f.engine.Scan(context.Background(), &engine.ScanRequest{}); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	f.run(t, "x", "3", "1", "fav", "q", "q")

	versions, _ := f.engine.Versions()
	if got := versions[0].DisplayName(); got != "4.2.stable - fav" {
		t.Errorf("DisplayName() = %q, want %q", got, "4.2.stable - fav")
	}

	out := f.run(t, "x", "3", "2", "q", "q")
	if !contains(out, "Invalid version number.") {
		t.Errorf("expected invalid number message, got:\n%s", out)
	}
}
