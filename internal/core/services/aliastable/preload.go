package aliastable

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

/*
Preload inserts predefined aliases into table in order, applying the same
expansion guard as the alias builtin. Entries failing the guard are skipped
and returned. Later entries win over earlier ones with the same name.
*/
func Preload(table ports.AliasTable, tok ports.Tokenizer, predefined []alias.Alias) (rejected []alias.Alias) {
	for _, a := range predefined {
		if err := CheckExpansion(tok.Tokenize(a.Command)); err != nil {
			rejected = append(rejected, a)
			continue
		}
		table.Upsert(a.Name, a.Command)
	}
	return rejected
}
