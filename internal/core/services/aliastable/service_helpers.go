package aliastable

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
)

var (
	// ErrMalformedAlias covers a missing '=', an empty name or an unquoted value.
	ErrMalformedAlias = errors.New("malformed alias definition")
	// ErrAliasTooLong is returned when an expansion has more arguments than allowed.
	ErrAliasTooLong = errors.New("alias expansion has too many arguments")
)

const (
	definitionPrefixLen = len("alias ")
	unaliasPrefixLen    = len("unalias ")
	unaliasLineLimit    = 50
	// MaxExpansionArgs is the largest token count of a non-echo expansion.
	MaxExpansionArgs = 4
)

/*
ParseDefinition extracts name and value from a line of the form
alias name='value'.

The name is every non-space character after the "alias " prefix and before
the first '='. The value is the text between the first two single quotes on
the line; anything after the second quote is ignored.
*/
func ParseDefinition(line string) (alias.Alias, error) {
	var name, value []byte
	seenEquals := false
	quotes := 0

	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '=' {
			seenEquals = true
		}
		if !seenEquals && i >= definitionPrefixLen && c != ' ' {
			name = append(name, c)
		}

		if c == '\'' {
			quotes++
			if quotes == 2 {
				break
			}
			continue
		}
		if quotes == 1 {
			value = append(value, c)
		}
	}

	if !seenEquals || quotes != 2 || len(name) == 0 {
		return alias.Alias{}, fmt.Errorf("%w: %q", ErrMalformedAlias, line)
	}
	return alias.New(string(name), string(value)), nil
}

// CheckExpansion rejects expansions that would break the argument cap once
// used as a command: more than MaxExpansionArgs tokens, unless led by echo.
func CheckExpansion(tokens []string) error {
	if len(tokens) > MaxExpansionArgs && tokens[0] != command.BuiltinEcho {
		return fmt.Errorf("%w: %d tokens", ErrAliasTooLong, len(tokens))
	}
	return nil
}

// UnaliasName returns the name operand of an "unalias name" line: the text
// after the prefix, cut at the 50th byte of the line.
func UnaliasName(line string) string {
	if len(line) <= unaliasPrefixLen {
		return ""
	}
	end := len(line)
	if end > unaliasLineLimit {
		end = unaliasLineLimit
	}
	return line[unaliasPrefixLen:end]
}
