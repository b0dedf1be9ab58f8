package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danieljhkim/gdvm/internal/engine"
	"github.com/danieljhkim/gdvm/internal/registry"
)

// errQuit ends the menu when input is exhausted.
var errQuit = errors.New("quit")

// menu is the interactive front end shown when gdvm runs without a command.
type menu struct {
	eng     *engine.Engine
	in      *bufio.Scanner
	version string
}

func newMenu(eng *engine.Engine, in io.Reader, version string) *menu {
	return &menu{eng: eng, in: bufio.NewScanner(in), version: version}
}

// Run shows the main menu until the operator quits or input ends.
func (m *menu) Run(ctx context.Context) error {
	for {
		if err := m.header(); err != nil {
			return err
		}
		PrintInfo("R. Rescan for versions")
		PrintInfo("X. Change settings")
		PrintInfo("Q. Quit")

		input, err := m.prompt()
		if err != nil {
			return nil
		}

		if n, convErr := strconv.Atoi(input); convErr == nil {
			m.launch(ctx, n-1)
			continue
		}

		switch strings.ToLower(input) {
		case "r":
			if err := m.rescan(ctx); err != nil {
				return nil
			}
		case "x":
			if err := m.settings(ctx); err != nil {
				return nil
			}
		case "q":
			return nil
		default:
			PrintInfo("Invalid input.")
		}
	}
}

func (m *menu) header() error {
	status, err := m.eng.Status()
	if err != nil {
		return err
	}
	PrintInfo("Godot Version Manager - " + m.version)
	PrintInfo("Steam hours are " + sessionState(status.UseSession) + ".")
	PrintInfo("")
	if len(status.Versions) == 0 {
		PrintEmptyState("No versions found")
	}
	PrintNumberedList(displayNames(status.Versions), 0)
	return nil
}

// prompt reads one trimmed line. It returns errQuit at end of input.
func (m *menu) prompt() (string, error) {
	_, _ = fmt.Fprint(stdout, "> ")
	if !m.in.Scan() {
		return "", errQuit
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *menu) confirmClear() (bool, error) {
	PrintInfo("Do you wish to clear already cached versions (excluding manually added versions)? (y/n)")
	answer, err := m.prompt()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

func (m *menu) launch(ctx context.Context, index int) {
	_, err := m.eng.Run(ctx, index)
	switch {
	case err == nil:
	case errors.Is(err, registry.ErrOutOfRange):
		PrintInfo("Invalid version number.")
	default:
		PrintError(describeError(err))
	}
}

func (m *menu) rescan(ctx context.Context) error {
	if !m.eng.ScanPathExists() {
		PrintWarning("Scan path not found, please update it in settings.")
		return nil
	}

	clearFirst, err := m.confirmClear()
	if err != nil {
		return err
	}
	m.scan(ctx, &engine.ScanRequest{Clear: clearFirst})
	return nil
}

func (m *menu) scan(ctx context.Context, req *engine.ScanRequest) {
	result, err := m.eng.Scan(ctx, req)
	if err != nil {
		PrintError(describeError(err))
		return
	}
	printScanResult(result)
	PrintSuccess("Done!")
}

func (m *menu) settings(ctx context.Context) error {
	for {
		PrintInfo("Settings Panel")
		PrintInfo("1. Toggle Steam hours")
		PrintInfo("2. Change scan path")
		PrintInfo("3. Change nickname")
		PrintInfo("")
		PrintInfo("Q. Return to main menu")

		input, err := m.prompt()
		if err != nil {
			return err
		}

		switch strings.ToLower(input) {
		case "1":
			enabled, err := m.eng.ToggleSession()
			if err != nil {
				PrintError(describeError(err))
				continue
			}
			PrintInfo("Steam hours are now " + sessionState(enabled) + ".")
		case "2":
			if err := m.changeScanPath(ctx); err != nil {
				return err
			}
		case "3":
			if err := m.rename(); err != nil {
				return err
			}
		case "q":
			return nil
		default:
			PrintInfo("Invalid input.")
		}
	}
}

func (m *menu) changeScanPath(ctx context.Context) error {
	PrintInfo("Enter new scan path:")
	path, err := m.prompt()
	if err != nil {
		return err
	}

	if path == "" {
		PrintWarning("Scan path not found, please choose some place that exists.")
		return nil
	}
	_, err = m.eng.SetScanPath(ctx, &engine.SetScanPathRequest{Path: path})
	if errors.Is(err, engine.ErrNotFound) {
		PrintWarning("Scan path not found, please choose some place that exists.")
		return nil
	}
	if err != nil {
		PrintError(describeError(err))
		return nil
	}

	clearFirst, err := m.confirmClear()
	if err != nil {
		return err
	}
	m.scan(ctx, &engine.ScanRequest{Clear: clearFirst})
	return nil
}

func (m *menu) rename() error {
	versions, err := m.eng.Versions()
	if err != nil {
		return err
	}

	PrintInfo("Enter item number of version to change nickname for:")
	PrintNumberedList(displayNames(versions), 0)
	input, err := m.prompt()
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(input)
	if convErr != nil {
		return nil
	}
	if n < 1 || n > len(versions) {
		PrintInfo("Invalid version number.")
		return nil
	}

	PrintInfo("Enter new nickname (leave blank to remove nickname)")
	nickname, err := m.prompt()
	if err != nil {
		return err
	}
	if _, err := m.eng.Rename(n-1, nickname); err != nil {
		PrintError(describeError(err))
	}
	return nil
}
