package testutil

import "github.com/AntonioJCosta/minish/internal/core/ports"

// MockScriptFeeder records the scripts it is asked to feed.
type MockScriptFeeder struct {
	FeedFunc func(path string) error
	Paths    []string
}

func (m *MockScriptFeeder) Feed(path string) error {
	m.Paths = append(m.Paths, path)
	if m.FeedFunc != nil {
		return m.FeedFunc(path)
	}
	return nil
}

var _ ports.ScriptFeeder = (*MockScriptFeeder)(nil)
