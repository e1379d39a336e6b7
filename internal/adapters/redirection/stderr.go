package redirection

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/logutil"
)

var logger = logutil.GetLogger("[redirection] ")

// FileMode is the permission used when a redirection target is created.
const FileMode = 0640

const noSaved = -1

// FDRedirector points a file descriptor at a file in append mode and keeps
// a duplicate of the previous target so it can be put back.
type FDRedirector struct {
	mu    sync.Mutex
	fd    int
	saved int
}

// NewStderrRedirector creates a redirector for the process's fd 2.
func NewStderrRedirector() ports.StderrRedirector {
	return NewFDRedirector(int(os.Stderr.Fd()))
}

// NewFDRedirector creates a redirector for an arbitrary descriptor.
func NewFDRedirector(fd int) *FDRedirector {
	return &FDRedirector{fd: fd, saved: noSaved}
}

/*
Apply opens path for appending (creating it if needed) and makes the
descriptor refer to it. If a redirection is already active it is restored
first, so the saved descriptor always refers to the original target.
*/
func (r *FDRedirector) Apply(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.restoreLocked(); err != nil {
		return err
	}

	file, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_APPEND|unix.O_CLOEXEC, FileMode)
	if err != nil {
		return fmt.Errorf("opening redirection target %s: %w", path, err)
	}
	defer unix.Close(file)

	saved, err := unix.FcntlInt(uintptr(r.fd), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("saving fd %d: %w", r.fd, err)
	}
	if err := unix.Dup2(file, r.fd); err != nil {
		unix.Close(saved)
		return fmt.Errorf("redirecting fd %d to %s: %w", r.fd, path, err)
	}
	r.saved = saved
	logger.Printf("fd %d -> %s (saved as %d)", r.fd, path, saved)
	return nil
}

// Restore puts the saved target back. Without an active redirection it does nothing.
func (r *FDRedirector) Restore() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restoreLocked()
}

func (r *FDRedirector) restoreLocked() error {
	if r.saved == noSaved {
		return nil
	}
	saved := r.saved
	r.saved = noSaved
	defer unix.Close(saved)
	if err := unix.Dup2(saved, r.fd); err != nil {
		return fmt.Errorf("restoring fd %d: %w", r.fd, err)
	}
	logger.Printf("fd %d restored", r.fd)
	return nil
}

// Active reports whether a redirection is in effect.
func (r *FDRedirector) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved != noSaved
}
