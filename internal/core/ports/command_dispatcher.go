package ports

/*
CommandDispatcher runs one command line: builtins, alias expansion,
logical sequencing and process creation. It returns the number of
successes the line added to the succeeded-command counter.
*/
type CommandDispatcher interface {
	Dispatch(line string) int
}
