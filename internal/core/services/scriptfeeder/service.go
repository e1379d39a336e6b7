package scriptfeeder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/AntonioJCosta/minish/internal/core/domain/session"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/logutil"
)

var logger = logutil.GetLogger("[scriptfeeder] ")

// ScriptSuffix is the only accepted script extension.
const ScriptSuffix = ".sh"

// ErrNotScript is returned for paths that do not end in ScriptSuffix.
var ErrNotScript = errors.New("not a " + ScriptSuffix + " script")

type service struct {
	fs         afero.Fs
	dispatcher ports.CommandDispatcher
	counters   *session.Counters
}

// NewService creates a script feeder reading from fs.
// It panics if any dependency is nil.
func NewService(fs afero.Fs, dispatcher ports.CommandDispatcher, counters *session.Counters) ports.ScriptFeeder {
	if fs == nil || dispatcher == nil || counters == nil {
		panic("scriptfeeder dependencies cannot be nil")
	}
	return &service{fs: fs, dispatcher: dispatcher, counters: counters}
}

/*
Feed dispatches every line of the script at path as if it had been typed.

Every line read adds one to the script-line counter. Empty lines and lines
starting with '#' are skipped; the trailing newline is removed from the rest.
Lines are dispatched as they are, so a "source" line inside a script is not
treated as a directive.
*/
func (s *service) Feed(path string) error {
	if !strings.HasSuffix(path, ScriptSuffix) {
		return fmt.Errorf("%w: %q", ErrNotScript, path)
	}
	file, err := s.fs.Open(path)
	if err != nil {
		return fmt.Errorf("opening script %s: %w", path, err)
	}
	defer file.Close()

	logger.Printf("sourcing %s", path)
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			s.counters.ScriptLines.Add(1)
			s.feedLine(line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading script %s: %w", path, err)
		}
	}
}

func (s *service) feedLine(line string) {
	if line[0] == '#' || line[0] == '\n' {
		return
	}
	s.dispatcher.Dispatch(strings.TrimSuffix(line, "\n"))
}
