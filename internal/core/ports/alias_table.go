package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/alias"

/*
AliasTable defines the contract for the interpreter's in-memory alias store.
Enumerate returns entries most-recently-inserted first; updating an existing
name keeps its position.
*/
type AliasTable interface {
	Exists(name string) bool
	Lookup(name string) (expansion string, ok bool)
	// Upsert replaces the expansion of an existing name or inserts a new entry at the front.
	Upsert(name, expansion string)
	// Remove deletes name, returning ErrAliasNotFound if it is absent.
	Remove(name string) error
	Enumerate() []alias.Alias
	Count() int
}
