package oscommand

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// ErrEmptyCommand is returned when there is nothing to execute.
var ErrEmptyCommand = errors.New("empty command")

// OSProcessLauncher implements the ProcessLauncher interface with os/exec.
// Children inherit the given standard streams directly as file descriptors,
// so a redirected fd 2 is what they see as stderr.
type OSProcessLauncher struct {
	stdin, stdout, stderr *os.File
}

// NewOSProcessLauncher creates a launcher whose children use the process's own standard streams.
func NewOSProcessLauncher() ports.ProcessLauncher {
	return NewOSProcessLauncherWithFiles(os.Stdin, os.Stdout, os.Stderr)
}

// NewOSProcessLauncherWithFiles creates a launcher with explicit standard streams.
func NewOSProcessLauncherWithFiles(stdin, stdout, stderr *os.File) ports.ProcessLauncher {
	return &OSProcessLauncher{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (l *OSProcessLauncher) command(argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	return cmd, nil
}

// Run starts argv, waits for it and returns its exit code. A child killed by
// a signal reports -1.
func (l *OSProcessLauncher) Run(argv []string) (int, error) {
	cmd, err := l.command(argv)
	if err != nil {
		return -1, err
	}
	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("starting %q: %w", argv[0], err)
	}
	return exitStatus(cmd.Wait()), nil
}

// Start launches argv in the background. The handle is released right away;
// the pid is reaped elsewhere with wait4.
func (l *OSProcessLauncher) Start(argv []string) (int, error) {
	cmd, err := l.command(argv)
	if err != nil {
		return -1, err
	}
	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("starting %q: %w", argv[0], err)
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return status.ExitStatus()
		}
		return exitErr.ExitCode()
	}
	return -1
}
