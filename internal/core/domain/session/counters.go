/*
Package session holds the process-wide counters shown in the prompt.
*/
package session

import "sync/atomic"

/*
Counters is shared between the read loop, the dispatcher and the reaper. The
reaper increments Succeeded from its own goroutine, so every field is atomic.
*/
type Counters struct {
	Succeeded   atomic.Int64
	Apostrophes atomic.Int64
	ScriptLines atomic.Int64
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{}
}
