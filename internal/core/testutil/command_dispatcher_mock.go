package testutil

import "github.com/AntonioJCosta/minish/internal/core/ports"

// MockCommandDispatcher records the lines it is asked to dispatch.
type MockCommandDispatcher struct {
	DispatchFunc func(line string) int
	Lines        []string
}

func (m *MockCommandDispatcher) Dispatch(line string) int {
	m.Lines = append(m.Lines, line)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(line)
	}
	return 0
}

var _ ports.CommandDispatcher = (*MockCommandDispatcher)(nil)
