//go:build windows

package session

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

const steamLibrary = "steam_api64.dll"

// nativeAPI calls into steam_api64.dll, loaded on first use.
type nativeAPI struct {
	once     sync.Once
	dll      *windows.LazyDLL
	loadErr  error
	init     *windows.LazyProc
	shutdown *windows.LazyProc
}

func newNativeAPI() SteamAPI {
	return &nativeAPI{}
}

func (n *nativeAPI) load() error {
	n.once.Do(func() {
		n.dll = windows.NewLazyDLL(steamLibrary)
		if err := n.dll.Load(); err != nil {
			n.loadErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			return
		}
		n.init = n.dll.NewProc("SteamAPI_Init")
		if n.init.Find() != nil {
			// Newer SDKs only export the flat initializer.
			n.init = n.dll.NewProc("SteamAPI_InitFlat")
		}
		n.shutdown = n.dll.NewProc("SteamAPI_Shutdown")
		if err := n.init.Find(); err != nil {
			n.loadErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			return
		}
		if err := n.shutdown.Find(); err != nil {
			n.loadErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	})
	return n.loadErr
}

func (n *nativeAPI) Init() error {
	if err := n.load(); err != nil {
		return err
	}
	var ok bool
	if n.init.Name == "SteamAPI_InitFlat" {
		// Returns ESteamAPIInitResult; zero is OK.
		r, _, _ := n.init.Call(0)
		ok = r == 0
	} else {
		r, _, _ := n.init.Call()
		ok = byte(r) != 0
	}
	if !ok {
		return fmt.Errorf("SteamAPI initialization failed; is the Steam client running?")
	}
	return nil
}

func (n *nativeAPI) Shutdown() error {
	if err := n.load(); err != nil {
		return err
	}
	_, _, _ = n.shutdown.Call()
	return nil
}
