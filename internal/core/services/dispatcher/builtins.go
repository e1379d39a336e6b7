package dispatcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/AntonioJCosta/minish/internal/core/services/aliastable"
)

func (s *service) listJobs() int {
	for _, j := range s.jobs.List() {
		fmt.Fprintln(s.stdout, j)
	}
	s.counters.Succeeded.Add(1)
	return 1
}

// aliasBuiltin lists the table for a bare "alias" and otherwise defines one alias.
func (s *service) aliasBuiltin(line command.Line) int {
	if len(line.Args) == 1 {
		for _, a := range s.aliases.Enumerate() {
			fmt.Fprintln(s.stdout, a)
		}
		return s.builtinSucceeded(line)
	}

	def, err := aliastable.ParseDefinition(strings.TrimLeft(line.Text, " "))
	if err == nil {
		err = aliastable.CheckExpansion(s.tok.Tokenize(def.Command))
	}
	if err != nil {
		logger.Printf("alias rejected: %v", err)
		s.reportError()
		return 0
	}
	s.aliases.Upsert(def.Name, def.Command)
	return s.builtinSucceeded(line)
}

// unaliasBuiltin removes one alias. An unknown name is reported but the
// builtin itself still counts as having run.
func (s *service) unaliasBuiltin(line command.Line) int {
	name := aliastable.UnaliasName(strings.TrimLeft(line.Text, " "))
	if err := s.aliases.Remove(name); err != nil {
		if !errors.Is(err, aliastable.ErrAliasNotFound) {
			s.reportError()
			return 0
		}
		fmt.Fprintf(s.stdout, "Key '%s' not found.\n", name)
	}
	return s.builtinSucceeded(line)
}

func (s *service) builtinSucceeded(line command.Line) int {
	s.counters.Succeeded.Add(1)
	if command.HasQuote(line.Text) {
		s.counters.Apostrophes.Add(1)
	}
	return 1
}
