package ports

// ScriptFeeder runs every command line of a script file through the dispatcher.
type ScriptFeeder interface {
	Feed(path string) error
}
