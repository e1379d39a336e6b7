package ports

// Tokenizer splits a raw command line into arguments.
type Tokenizer interface {
	Tokenize(line string) []string
}
