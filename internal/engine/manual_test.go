package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestAddManual(t *testing.T) {
	tests := []struct {
		name           string
		folder         string
		executable     string
		wantVersion    string
		wantExecutable string
	}{
		{
			name:           "default executable",
			folder:         "Godot_v4.2.1-stable_win64",
			wantVersion:    "v4.2.1-stable",
			wantExecutable: "Godot_v4.2.1-stable_win64.exe",
		},
		{
			name:           "folder already has suffix",
			folder:         "Godot_v3.5_win64.exe",
			wantVersion:    "v3.5",
			wantExecutable: "Godot_v3.5_win64.exe",
		},
		{
			name:           "explicit executable",
			folder:         "Godot_v4.3-stable_mono_win64",
			executable:     "Godot_v4.3-stable_mono_win64.exe",
			wantVersion:    "v4.3-stable",
			wantExecutable: "Godot_v4.3-stable_mono_win64.exe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.open(t)
			dir := f.mkdir(t, "manual", tt.folder)

			res, err := f.engine.AddManual(context.Background(), &AddManualRequest{
				Path:       dir,
				Executable: tt.executable,
				Nickname:   "work",
			})
			if err != nil {
				t.Fatalf("AddManual() error = %v", err)
			}
			if !res.Added {
				t.Fatal("expected version to be added")
			}

			v := res.Version
			if v.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", v.Version, tt.wantVersion)
			}
			if v.Executable != tt.wantExecutable {
				t.Errorf("Executable = %q, want %q", v.Executable, tt.wantExecutable)
			}
			if !v.IsManual {
				t.Error("expected IsManual")
			}
			if v.Nickname() != "work" {
				t.Errorf("Nickname() = %q, want %q", v.Nickname(), "work")
			}

			persisted := f.reload(t).Versions()
			if len(persisted) != 1 || persisted[0].Path != dir {
				t.Errorf("persisted %+v, want one record at %s", persisted, dir)
			}
		})
	}
}

func TestAddManual_Duplicate(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	dir := f.mkdir(t, "Godot_v4_win64")

	if _, err := f.engine.AddManual(context.Background(), &AddManualRequest{Path: dir}); err != nil {
		t.Fatalf("AddManual() error = %v", err)
	}
	f.repo.saves = 0

	res, err := f.engine.AddManual(context.Background(), &AddManualRequest{Path: dir + string(filepath.Separator)})
	if err != nil {
		t.Fatalf("AddManual() error = %v", err)
	}
	if res.Added {
		t.Error("expected duplicate to be reported as not added")
	}
	if f.repo.saves != 0 {
		t.Errorf("expected no save, got %d", f.repo.saves)
	}
}

func TestAddManual_Errors(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	noVersion := f.mkdir(t, "Godot")

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing path", filepath.Join(f.root, "missing_v1"), ErrNotFound},
		{"no version part", noVersion, ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.AddManual(context.Background(), &AddManualRequest{Path: tt.path})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddManual() error = %v, want %v", err, tt.wantErr)
			}
			if versions, _ := f.engine.Versions(); len(versions) != 0 {
				t.Errorf("expected no versions, got %d", len(versions))
			}
		})
	}
}

func TestDefaultExecutable_NoSuffix(t *testing.T) {
	e := &Engine{}
	if got := e.defaultExecutable("Godot_v4_linux"); got != "Godot_v4_linux" {
		t.Errorf("defaultExecutable() = %q, want folder name", got)
	}
}
