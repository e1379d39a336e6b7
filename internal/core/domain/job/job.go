/*
Package job defines the background job entity tracked by the interpreter.
*/
package job

import "fmt"

// Job is a backgrounded child process that has not been reaped yet.
type Job struct {
	ID      int
	PID     int
	Command string // the line as typed, trailing '&' included
}

// String renders the job the way the `jobs` builtin lists it.
func (j Job) String() string {
	return fmt.Sprintf("[%d] %d               %s", j.ID, j.PID, j.Command)
}

// Announcement is printed when the job is started.
func (j Job) Announcement() string {
	return fmt.Sprintf("[%d] %d", j.ID, j.PID)
}
