package predefinedaliases

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/ports"
)

// YAMLProvider implements the PredefinedAliasProvider interface
// by reading aliases from a YAML file.
type YAMLProvider struct {
	fs       afero.Fs
	filePath string
	validate *validator.Validate
}

// NewYAMLProvider creates a new YAMLProvider reading filePath from fs.
func NewYAMLProvider(fs afero.Fs, filePath string) (ports.PredefinedAliasProvider, error) {
	if fs == nil {
		return nil, errors.New("filesystem cannot be nil")
	}
	if filePath == "" {
		return nil, errors.New("YAML file path cannot be empty")
	}
	return &YAMLProvider{fs: fs, filePath: filePath, validate: validator.New()}, nil
}

/*
GetPredefinedAliases reads the alias list from the configured file.
A missing or empty file yields no aliases and no error. Unknown fields
and entries without a name or command are rejected.
*/
func (p *YAMLProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	predefined := []alias.Alias{}

	data, err := afero.ReadFile(p.fs, p.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return predefined, nil
		}
		return nil, fmt.Errorf("failed to read predefined aliases file %s: %w", p.filePath, err)
	}
	if len(data) == 0 {
		return predefined, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&predefined); err != nil {
		// a file holding only comments has no document
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal predefined aliases from %s: %w", p.filePath, err)
	}

	for i, a := range predefined {
		if err := p.validate.Struct(a); err != nil {
			return nil, fmt.Errorf("predefined alias #%d in %s: %w", i+1, p.filePath, err)
		}
		predefined[i] = alias.New(a.Name, a.Command)
	}
	return predefined, nil
}
