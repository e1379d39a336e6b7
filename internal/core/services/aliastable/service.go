package aliastable

import (
	"errors"
	"sync"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// ErrAliasNotFound is returned by Remove when the name is not defined.
var ErrAliasNotFound = errors.New("alias not found")

type service struct {
	mu      sync.RWMutex
	entries []alias.Alias // front is the most recently inserted
}

// NewService creates an empty alias table.
func NewService() ports.AliasTable {
	return &service{}
}

func (s *service) indexOf(name string) int {
	for i, e := range s.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func (s *service) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(alias.TruncateName(name)) >= 0
}

func (s *service) Lookup(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(alias.TruncateName(name))
	if i < 0 {
		return "", false
	}
	return s.entries[i].Command, true
}

// Upsert updates an existing entry in place, or inserts a new one at the front.
func (s *service) Upsert(name, expansion string) {
	a := alias.New(name, expansion)

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(a.Name); i >= 0 {
		s.entries[i].Command = expansion
		return
	}
	s.entries = append([]alias.Alias{a}, s.entries...)
}

func (s *service) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(alias.TruncateName(name))
	if i < 0 {
		return ErrAliasNotFound
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

func (s *service) Enumerate() []alias.Alias {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]alias.Alias, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
