package tokenizer

import (
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// QuoteTokenizer splits command lines on spaces, honoring single and double quotes.
type QuoteTokenizer struct{}

// NewQuoteTokenizer creates a new QuoteTokenizer.
func NewQuoteTokenizer() ports.Tokenizer {
	return &QuoteTokenizer{}
}

/*
Tokenize breaks a command line into arguments.

Runs of the space character separate tokens; tabs are ordinary characters.
A token that starts with ' or " extends to the next matching quote and its
value is the text between the quotes. Scanning resumes right after the
closing quote, so `"a"b` yields two tokens. When the closing quote is
missing, the token keeps its opening quote and runs to the end of the line.
There is no escaping. The result is never nil.
*/
func (t *QuoteTokenizer) Tokenize(line string) []string {
	tokens := []string{}
	i := 0
	for i < len(line) {
		for i < len(line) && line[i] == ' ' {
			i++
		}
		if i >= len(line) {
			break
		}

		if isQuote(line[i]) {
			token, next := scanQuoted(line, i)
			tokens = append(tokens, token)
			i = next
			continue
		}

		start := i
		for i < len(line) && line[i] != ' ' {
			i++
		}
		tokens = append(tokens, line[start:i])
	}
	return tokens
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

// scanQuoted reads the quoted token opening at start and returns it with the
// index to resume scanning from.
func scanQuoted(line string, start int) (string, int) {
	quote := line[start]
	for j := start + 1; j < len(line); j++ {
		if line[j] == quote {
			return line[start+1 : j], j + 1
		}
	}
	// Unterminated: the opening quote is literal.
	return line[start:], len(line)
}
