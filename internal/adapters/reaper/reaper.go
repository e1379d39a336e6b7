package reaper

import (
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/AntonioJCosta/minish/internal/core/domain/session"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/logutil"
)

var logger = logutil.GetLogger("[reaper] ")

// waitFunc has the shape of a non-blocking wait4 on one pid.
type waitFunc func(pid int, ws *unix.WaitStatus) (int, error)

func wait4NoHang(pid int, ws *unix.WaitStatus) (int, error) {
	return unix.Wait4(pid, ws, unix.WNOHANG, nil)
}

/*
SigchldReaper collects terminated background jobs whenever SIGCHLD arrives.

It only ever waits on pids that are in the job table. Foreground children are
waited for by the dispatcher through their own process handle, so the two
never compete for the same child and a foreground exit is never counted
twice.
*/
type SigchldReaper struct {
	jobs     ports.JobTable
	counters *session.Counters
	wait     waitFunc

	sigCh chan os.Signal
	nudge chan struct{}
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// NewSigchldReaper creates a reaper for the given job table. Call Start to begin listening.
func NewSigchldReaper(jobs ports.JobTable, counters *session.Counters) *SigchldReaper {
	return &SigchldReaper{
		jobs:     jobs,
		counters: counters,
		wait:     wait4NoHang,
		sigCh:    make(chan os.Signal, 8),
		nudge:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start subscribes to SIGCHLD and reaps in a background goroutine.
func (r *SigchldReaper) Start() {
	signal.Notify(r.sigCh, syscall.SIGCHLD)
	r.wg.Add(1)
	go r.loop()
}

// Stop unsubscribes and waits for the reaping goroutine to exit.
func (r *SigchldReaper) Stop() {
	r.once.Do(func() {
		signal.Stop(r.sigCh)
		close(r.done)
	})
	r.wg.Wait()
}

// Nudge requests a reaping pass. A job whose child exited before it was
// inserted into the table is only collected this way.
func (r *SigchldReaper) Nudge() {
	select {
	case r.nudge <- struct{}{}:
	default:
	}
}

func (r *SigchldReaper) loop() {
	defer r.wg.Done()
	for {
		select {
		case <-r.done:
			return
		case <-r.sigCh:
		case <-r.nudge:
		}
		if n := r.ReapOnce(); n > 0 {
			logger.Printf("reaped %d job(s), %d left", n, r.jobs.Len())
		}
	}
}

/*
ReapOnce collects every job whose child has terminated, without blocking.
A job that exited with status 0 adds one to the succeeded counter. A pid
that is no longer our child is dropped from the table. It returns the number
of jobs removed.
*/
func (r *SigchldReaper) ReapOnce() int {
	removed := 0
	for _, j := range r.jobs.List() {
		var ws unix.WaitStatus
		pid, err := r.wait(j.PID, &ws)
		for errors.Is(err, unix.EINTR) {
			pid, err = r.wait(j.PID, &ws)
		}

		switch {
		case errors.Is(err, unix.ECHILD):
			logger.Printf("job [%d] pid %d is gone", j.ID, j.PID)
		case err != nil:
			logger.Printf("wait4 %d: %v", j.PID, err)
			continue
		case pid != j.PID:
			continue // still running
		case ws.Exited() && ws.ExitStatus() == 0:
			if _, ok := r.jobs.Find(j.PID); ok {
				r.counters.Succeeded.Add(1)
			}
		}
		r.jobs.Remove(j.PID)
		removed++
	}
	return removed
}

var _ ports.ChildReaper = (*SigchldReaper)(nil)
