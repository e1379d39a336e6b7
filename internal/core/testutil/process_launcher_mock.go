package testutil

import (
	"errors"

	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
type MockProcessLauncher struct {
	RunFunc   func(argv []string) (int, error)
	StartFunc func(argv []string) (int, error)
	// RunCalls and StartCalls record the argv of every call.
	RunCalls   [][]string
	StartCalls [][]string
}

// Run records argv and calls RunFunc.
func (m *MockProcessLauncher) Run(argv []string) (int, error) {
	m.RunCalls = append(m.RunCalls, append([]string(nil), argv...))
	if m.RunFunc != nil {
		return m.RunFunc(argv)
	}
	return -1, errors.New("MockProcessLauncher.RunFunc not implemented")
}

// Start records argv and calls StartFunc.
func (m *MockProcessLauncher) Start(argv []string) (int, error) {
	m.StartCalls = append(m.StartCalls, append([]string(nil), argv...))
	if m.StartFunc != nil {
		return m.StartFunc(argv)
	}
	return -1, errors.New("MockProcessLauncher.StartFunc not implemented")
}

// ExitCodeByName returns a RunFunc that exits 0 for "true" and "echo", 1 for
// everything else, which is how most dispatcher tests want the world to look.
func ExitCodeByName() func(argv []string) (int, error) {
	return func(argv []string) (int, error) {
		switch argv[0] {
		case "true", "echo", "ls":
			return 0, nil
		}
		return 1, nil
	}
}

var _ ports.ProcessLauncher = (*MockProcessLauncher)(nil)
