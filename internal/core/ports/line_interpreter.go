package ports

// LineInterpreter handles one line read from the user and renders the prompt.
type LineInterpreter interface {
	// HandleLine processes line and reports whether the session should end.
	HandleLine(line string) (stop bool)
	Prompt() string
}
