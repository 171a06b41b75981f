// Package installer runs the package manager inside a freshly
// generated project.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrInstallFailed indicates the package manager exited non-zero.
var ErrInstallFailed = errors.New("installer: dependency installation failed")

// Runner executes the dependency installation command with the working
// directory set to the generated project root. Output streams directly
// to Stdout/Stderr so the user sees the package manager's own progress.
type Runner struct {
	WorkDir string
	Command string
	Args    []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// New creates a Runner that executes `npm install` in workDir.
func New(workDir string) *Runner {
	return &Runner{
		WorkDir: workDir,
		Command: "npm",
		Args:    []string{"install"},
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Available reports whether the install command can be found in PATH.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.Command)
	return err == nil
}

// Install runs the command to completion. Non-zero exit wraps
// ErrInstallFailed; the generated directory is left in place either way.
func (r *Runner) Install(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.Command, r.Args...)
	cmd.Dir = r.WorkDir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with code %d", ErrInstallFailed, r.Command, exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}
	return nil
}
