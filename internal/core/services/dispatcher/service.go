package dispatcher

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/domain/session"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/logutil"
)

var logger = logutil.GetLogger("[dispatcher] ")

// ErrTooManyArgs is logged when a non-echo command exceeds command.MaxArgs tokens.
var ErrTooManyArgs = errors.New("too many arguments")

// errToken is the only text users see for a rejected command.
const errToken = "ERR"

// Deps groups the collaborators of the dispatcher.
type Deps struct {
	Tokenizer ports.Tokenizer
	Aliases   ports.AliasTable
	Jobs      ports.JobTable
	Launcher  ports.ProcessLauncher
	Reaper    ports.ChildReaper
	Counters  *session.Counters
	Stdout    io.Writer
	Stderr    io.Writer
}

type service struct {
	tok      ports.Tokenizer
	aliases  ports.AliasTable
	jobs     ports.JobTable
	launcher ports.ProcessLauncher
	reaper   ports.ChildReaper
	counters *session.Counters
	stdout   io.Writer
	stderr   io.Writer
}

// NewService creates a dispatcher.
// It panics if any dependency is nil.
func NewService(d Deps) ports.CommandDispatcher {
	if d.Tokenizer == nil || d.Aliases == nil || d.Jobs == nil || d.Launcher == nil ||
		d.Reaper == nil || d.Counters == nil || d.Stdout == nil || d.Stderr == nil {
		panic("dispatcher dependencies cannot be nil")
	}
	return &service{
		tok:      d.Tokenizer,
		aliases:  d.Aliases,
		jobs:     d.Jobs,
		launcher: d.Launcher,
		reaper:   d.Reaper,
		counters: d.Counters,
		stdout:   d.Stdout,
		stderr:   d.Stderr,
	}
}

/*
Dispatch runs one command line and returns how many successes it added to
the succeeded counter.

Order of processing:
 1. a trailing '&' marks the line as background and is removed
 2. the line is tokenized; no tokens means nothing to do
 3. the jobs, alias and unalias builtins
 4. alias expansion of the first token
 5. lines with && or || go to the sequencer
 6. anything else becomes a child process, waited for unless in background
*/
func (s *service) Dispatch(raw string) int {
	line := command.Line{Raw: raw, Text: raw}
	if strings.HasSuffix(raw, command.BackgroundMark) {
		line.Background = true
		line.Text = strings.TrimSuffix(raw, command.BackgroundMark)
	}

	line.Args = s.tok.Tokenize(line.Text)
	if len(line.Args) == 0 {
		return 0
	}

	switch line.Args[0] {
	case command.BuiltinJobs:
		if len(line.Args) == 1 {
			return s.listJobs()
		}
	case command.BuiltinAlias:
		return s.aliasBuiltin(line)
	case command.BuiltinUnalias:
		return s.unaliasBuiltin(line)
	}

	line.Args = s.expandAlias(line.Args)

	if HasLogicalOperator(line.Args) {
		return s.sequence(line.Args)
	}
	return s.execute(line)
}

// expandAlias replaces the first token with the tokens of its alias, if it has one.
func (s *service) expandAlias(args []string) []string {
	expansion, ok := s.aliases.Lookup(args[0])
	if !ok {
		return args
	}
	expanded := append(s.tok.Tokenize(expansion), args[1:]...)
	logger.Printf("alias %s -> %q", args[0], expanded)
	return expanded
}

func (s *service) execute(line command.Line) int {
	args := line.Args
	if len(args) == 0 {
		return 0
	}
	if args[0] != command.BuiltinEcho && len(args) > command.MaxArgs {
		logger.Printf("%v: %q has %d tokens", ErrTooManyArgs, args[0], len(args))
		s.reportError()
		return 0
	}

	if line.Background {
		return s.startBackground(line)
	}

	code, err := s.launcher.Run(args)
	if err != nil {
		logger.Printf("run %q: %v", args[0], err)
		s.reportError()
		return 0
	}
	if code != 0 {
		return 0
	}
	s.counters.Succeeded.Add(1)
	if command.HasQuote(line.Text) {
		s.counters.Apostrophes.Add(1)
	}
	return 1
}

// startBackground launches the line without waiting and registers it as a
// job. Success is counted later by the reaper, not here.
func (s *service) startBackground(line command.Line) int {
	pid, err := s.launcher.Start(line.Args)
	if err != nil {
		logger.Printf("start %q: %v", line.Args[0], err)
		s.reportError()
		return 0
	}
	j := s.jobs.Insert(pid, line.Raw)
	s.reaper.Nudge()
	logger.Printf("job [%d] pid %d started: %s", j.ID, j.PID, j.Command)
	fmt.Fprintln(s.stdout, j.Announcement())
	return 0
}

func (s *service) reportError() {
	fmt.Fprintln(s.stderr, errToken)
}
