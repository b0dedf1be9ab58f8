// Package launch starts an engine installation and waits for it to exit.
package launch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Args are passed to every engine launch: open the project in the working
// directory and log verbosely.
var Args = []string{"--path", ".", "--verbose"}

// ProcessRunner spawns a process and blocks until it exits.
type ProcessRunner interface {
	// Run starts name in dir with args and waits for it.
	// Only failures to start are returned; the exit status is not inspected.
	Run(dir, name string, args []string) error
}

// ExecRunner implements ProcessRunner with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner attached to the current terminal.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts name in dir with args and waits for it.
// A relative name is resolved against the current directory, not dir.
func (r *ExecRunner) Run(dir, name string, args []string) error {
	if !filepath.IsAbs(name) {
		abs, err := filepath.Abs(name)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", name, err)
		}
		name = abs
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("failed waiting for %s: %w", name, err)
	}
	return nil
}
