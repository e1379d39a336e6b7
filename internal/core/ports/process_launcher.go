package ports

// ProcessLauncher creates child processes for external commands.
type ProcessLauncher interface {
	// Run starts argv and blocks until it exits, returning its exit code.
	// A non-nil error means the program could not be started at all.
	Run(argv []string) (exitCode int, err error)
	// Start starts argv without waiting and returns its pid. The caller owns reaping.
	Start(argv []string) (pid int, err error)
}
