/*
Package alias defines the core domain entity for an alias.
*/
package alias

import "fmt"

// MaxNameLength is the longest alias name kept; longer names are truncated.
const MaxNameLength = 49

/*
Alias represents a user-defined shortcut, consisting of a short name and the
command text it expands to. This is a core domain entity.
*/
type Alias struct {
	Command string `yaml:"command" validate:"required"`
	Name    string `yaml:"alias" validate:"required"`
}

// New builds an Alias, truncating the name to MaxNameLength bytes.
func New(name, command string) Alias {
	return Alias{Name: TruncateName(name), Command: command}
}

// TruncateName cuts name down to MaxNameLength bytes.
func TruncateName(name string) string {
	if len(name) > MaxNameLength {
		return name[:MaxNameLength]
	}
	return name
}

// String renders the alias the way the `alias` builtin lists it.
func (a Alias) String() string {
	return fmt.Sprintf("%s='%s'", a.Name, a.Command)
}
