package ports

// ChildReaper collects terminated background jobs asynchronously.
type ChildReaper interface {
	// Nudge requests a reaping pass without waiting for a child-state notification.
	Nudge()
}
