package testutil

import "github.com/AntonioJCosta/minish/internal/core/ports"

// MockLineInterpreter records lines and stops on a configurable one.
type MockLineInterpreter struct {
	HandleLineFunc func(line string) bool
	PromptText     string
	Lines          []string
}

func (m *MockLineInterpreter) HandleLine(line string) bool {
	m.Lines = append(m.Lines, line)
	if m.HandleLineFunc != nil {
		return m.HandleLineFunc(line)
	}
	return false
}

func (m *MockLineInterpreter) Prompt() string {
	return m.PromptText
}

var _ ports.LineInterpreter = (*MockLineInterpreter)(nil)
