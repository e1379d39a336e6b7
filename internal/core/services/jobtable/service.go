package jobtable

import (
	"sync"

	"github.com/AntonioJCosta/minish/internal/core/domain/job"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

/*
service keeps jobs in start order. It is written to by the dispatcher and the
reaper goroutine, so all access goes through mu.

Ids come from a counter that only goes back to 1 when the table becomes
empty; while any job is alive, new ids keep increasing.
*/
type service struct {
	mu     sync.Mutex
	jobs   []job.Job
	nextID int
}

// NewService creates an empty job table.
func NewService() ports.JobTable {
	return &service{nextID: 1}
}

func (s *service) Insert(pid int, command string) job.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := job.Job{ID: s.nextID, PID: pid, Command: command}
	s.nextID++
	s.jobs = append(s.jobs, j)
	return j
}

func (s *service) Remove(pid int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, j := range s.jobs {
		if j.PID == pid {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			break
		}
	}
	if len(s.jobs) == 0 {
		s.nextID = 1
	}
}

func (s *service) Find(pid int) (job.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.PID == pid {
			return j, true
		}
	}
	return job.Job{}, false
}

func (s *service) List() []job.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]job.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}
