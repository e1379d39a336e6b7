package testutil

import "github.com/AntonioJCosta/minish/internal/core/ports"

// MockChildReaper counts Nudge calls.
type MockChildReaper struct {
	NudgeCalls int
}

func (m *MockChildReaper) Nudge() {
	m.NudgeCalls++
}

var _ ports.ChildReaper = (*MockChildReaper)(nil)
