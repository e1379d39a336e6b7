package ports

import "github.com/AntonioJCosta/minish/internal/core/domain/alias"

// PredefinedAliasProvider supplies the aliases loaded into the alias table at
// startup, before the first prompt.
type PredefinedAliasProvider interface {
	// GetPredefinedAliases returns the entries in file order. A missing source yields none.
	GetPredefinedAliases() ([]alias.Alias, error)
}
