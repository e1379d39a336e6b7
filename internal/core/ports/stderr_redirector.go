package ports

/*
StderrRedirector retargets the process error stream to a file and back. A
redirection stays active across command lines until Restore is called.
*/
type StderrRedirector interface {
	Apply(path string) error
	Restore() error
	Active() bool
}
