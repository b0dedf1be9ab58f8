package session

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/gdvm/internal/fsops"
)

// SteamAppID is the store app id of the engine. Sessions under this id are
// counted as play time for it.
const SteamAppID = "404790"

// AppIDFileName is read by the Steam client library to learn the app id.
const AppIDFileName = "steam_appid.txt"

// SteamAPI is the subset of the Steam client library used here.
type SteamAPI interface {
	Init() error
	Shutdown() error
}

// Steam is a Session backed by the Steam client library.
type Steam struct {
	fs  fsops.FS
	dir string
	api SteamAPI
}

// NewSteam creates a Steam session that keeps its app id file in dir.
// A nil api uses the library bundled for the host platform.
func NewSteam(fs fsops.FS, dir string, api SteamAPI) *Steam {
	if api == nil {
		api = newNativeAPI()
	}
	return &Steam{fs: fs, dir: dir, api: api}
}

// Initialize writes the app id file if absent and starts the Steam API.
func (s *Steam) Initialize() error {
	path := filepath.Join(s.dir, AppIDFileName)
	exists, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", AppIDFileName, err)
	}
	if !exists {
		if err := s.fs.AtomicWrite(path, []byte(SteamAppID), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", AppIDFileName, err)
		}
	}
	if err := s.api.Init(); err != nil {
		return fmt.Errorf("steam init: %w", err)
	}
	return nil
}

// Finalize shuts the Steam API down.
func (s *Steam) Finalize() error {
	if err := s.api.Shutdown(); err != nil {
		return fmt.Errorf("steam shutdown: %w", err)
	}
	return nil
}
