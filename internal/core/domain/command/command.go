package command

import "strings"

// Operator and redirection tokens recognised by the interpreter.
const (
	OpAnd          = "&&"
	OpOr           = "||"
	RedirectStderr = "2>"
	BackgroundMark = "&"
)

// Builtin names handled without creating a process.
const (
	BuiltinJobs    = "jobs"
	BuiltinAlias   = "alias"
	BuiltinUnalias = "unalias"
	BuiltinSource  = "source"
	BuiltinEcho    = "echo" // not a builtin, but exempt from the argument cap
	ExitShell      = "exit_shell"
)

// MaxArgs is the largest token count (command name included) allowed for
// anything other than echo.
const MaxArgs = 5

// Line holds one command line after background detection and tokenization.
type Line struct {
	Raw        string   // text as received, before the trailing '&' is stripped
	Text       string   // text that was tokenized
	Args       []string // tokens, quotes stripped
	Background bool
}

// HasQuote reports whether the line contains a single or double quote.
func HasQuote(s string) bool {
	return strings.ContainsAny(s, `'"`)
}

// Join rebuilds a command string from tokens.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}
