package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
)

var (
	// ErrInputClosed is returned when input ends or cannot be read before exit_shell.
	ErrInputClosed = errors.New("input closed")
	// ErrLineTooLong is returned for a line of at least the configured maximum length.
	ErrLineTooLong = errors.New("input line too long")
)

// IsReported reports whether err has already been shown to the user as ERR.
func IsReported(err error) bool {
	return errors.Is(err, ErrInputClosed) || errors.Is(err, ErrLineTooLong)
}

/*
RunREPL prints the prompt, reads a line and hands it to interp until interp
asks to stop. A final line without a newline is still handled; the read
after it ends the session with ErrInputClosed.
*/
func RunREPL(interp ports.LineInterpreter, streams Streams, maxLine int) error {
	reader := bufio.NewReader(streams.In)
	for {
		fmt.Fprint(streams.Out, ui.PromptColor(interp.Prompt()))

		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(streams.Err, "ERR")
			if errors.Is(err, io.EOF) {
				return ErrInputClosed
			}
			return fmt.Errorf("%w: %v", ErrInputClosed, err)
		}

		line = strings.TrimSuffix(line, "\n")
		if len(line) >= maxLine {
			fmt.Fprintln(streams.Err, "ERR")
			return fmt.Errorf("%w: %d bytes", ErrLineTooLong, len(line))
		}
		if interp.HandleLine(line) {
			return nil
		}
	}
}
