package testutil

import "github.com/AntonioJCosta/minish/internal/core/ports"

// MockStderrRedirector records redirections without touching any descriptor.
type MockStderrRedirector struct {
	ApplyFunc   func(path string) error
	Applied     []string
	RestoreCall int
	active      bool
}

func (m *MockStderrRedirector) Apply(path string) error {
	if m.ApplyFunc != nil {
		if err := m.ApplyFunc(path); err != nil {
			return err
		}
	}
	m.Applied = append(m.Applied, path)
	m.active = true
	return nil
}

func (m *MockStderrRedirector) Restore() error {
	if m.active {
		m.RestoreCall++
	}
	m.active = false
	return nil
}

func (m *MockStderrRedirector) Active() bool {
	return m.active
}

var _ ports.StderrRedirector = (*MockStderrRedirector)(nil)
