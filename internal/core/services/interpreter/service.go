package interpreter

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/session"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/logutil"
)

var logger = logutil.GetLogger("[interpreter] ")

// PromptFormat renders the succeeded, alias and script-line counters.
const PromptFormat = "#cmd:%d|#alias:%d|#script lines:%d> "

// Deps groups the collaborators of the interpreter.
type Deps struct {
	Tokenizer  ports.Tokenizer
	Aliases    ports.AliasTable
	Redirector ports.StderrRedirector
	Dispatcher ports.CommandDispatcher
	Feeder     ports.ScriptFeeder
	Counters   *session.Counters
	Stdout     io.Writer
	Stderr     io.Writer
}

type service struct {
	tok        ports.Tokenizer
	aliases    ports.AliasTable
	redirector ports.StderrRedirector
	dispatcher ports.CommandDispatcher
	feeder     ports.ScriptFeeder
	counters   *session.Counters
	stdout     io.Writer
	stderr     io.Writer
}

// NewService creates the top-level line interpreter.
// It panics if any dependency is nil.
func NewService(d Deps) ports.LineInterpreter {
	if d.Tokenizer == nil || d.Aliases == nil || d.Redirector == nil || d.Dispatcher == nil ||
		d.Feeder == nil || d.Counters == nil || d.Stdout == nil || d.Stderr == nil {
		panic("interpreter dependencies cannot be nil")
	}
	return &service{
		tok:        d.Tokenizer,
		aliases:    d.Aliases,
		redirector: d.Redirector,
		dispatcher: d.Dispatcher,
		feeder:     d.Feeder,
		counters:   d.Counters,
		stdout:     d.Stdout,
		stderr:     d.Stderr,
	}
}

func (s *service) Prompt() string {
	return fmt.Sprintf(PromptFormat,
		s.counters.Succeeded.Load(), s.aliases.Count(), s.counters.ScriptLines.Load())
}

/*
HandleLine processes one line without its trailing newline.

exit_shell prints the apostrophe counter and ends the session. A "2>"
token redirects the error stream for this and the following lines and only
the text before it is run; a line without one puts the error stream back.
A source directive is handled here, everything else goes to the dispatcher.
*/
func (s *service) HandleLine(line string) bool {
	if line == command.ExitShell {
		fmt.Fprintf(s.stdout, "%d\n", s.counters.Apostrophes.Load())
		return true
	}

	tokens := s.tok.Tokenize(line)
	if target, ok := command.DetectRedirect(tokens); ok {
		if err := s.redirector.Apply(target); err != nil {
			logger.Printf("redirect: %v", err)
			fmt.Fprintln(s.stderr, "ERR")
			return false
		}
		line = command.CommandBefore(tokens)
		tokens = s.tok.Tokenize(line)
	} else if err := s.redirector.Restore(); err != nil {
		logger.Printf("restore: %v", err)
	}

	if len(tokens) == 0 {
		return false
	}
	if s.isSourceDirective(tokens[0]) {
		s.source(tokens)
		return false
	}
	s.dispatcher.Dispatch(line)
	return false
}

func (s *service) isSourceDirective(first string) bool {
	if first == command.BuiltinSource {
		return true
	}
	expansion, ok := s.aliases.Lookup(first)
	return ok && expansion == command.BuiltinSource
}

func (s *service) source(tokens []string) {
	if len(tokens) < 2 {
		fmt.Fprintln(s.stderr, "ERR")
		return
	}
	if err := s.feeder.Feed(tokens[1]); err != nil {
		logger.Printf("source: %v", err)
		fmt.Fprintln(s.stderr, "ERR")
		return
	}
	s.counters.Succeeded.Add(1)
}
