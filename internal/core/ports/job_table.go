package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/job"

// JobTable tracks background jobs. It is shared with the reaper and must be safe for concurrent use.
type JobTable interface {
	// Insert appends a job at the tail and returns it with its assigned id.
	Insert(pid int, command string) job.Job
	// Remove drops the job with the given pid, if any. Once the table is empty
	// the next id handed out is 1 again.
	Remove(pid int)
	Find(pid int) (job.Job, bool)
	List() []job.Job
	Len() int
}
