//go:build !windows

package session

import "fmt"

type nativeAPI struct{}

func newNativeAPI() SteamAPI {
	return nativeAPI{}
}

func (nativeAPI) Init() error {
	return fmt.Errorf("%w: the Steam client library is only bound on windows", ErrUnavailable)
}

func (nativeAPI) Shutdown() error {
	return nil
}
