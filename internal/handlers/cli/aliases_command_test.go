package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/minish/internal/config"
	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/testutil"
)

func providerReturning(aliases []alias.Alias, err error) ProviderFactory {
	return func(string) (ports.PredefinedAliasProvider, error) {
		return &testutil.MockPredefinedAliasProvider{
			GetPredefinedAliasesFunc: func() ([]alias.Alias, error) { return aliases, err },
		}, nil
	}
}

func TestRunAliasesCmd(t *testing.T) {
	t.Run("renders a table", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg := &config.Config{AliasFile: "aliases.yaml", NoColor: true}
		aliases := []alias.Alias{{Name: "gs", Command: "git status"}, {Name: "ll", Command: "ls -l"}}

		cmd := NewAliasesCommand(cfg, out, providerReturning(aliases, nil))
		cmd.SetArgs([]string{})
		err := cmd.Execute()

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Predefined aliases (aliases.yaml):")
		assert.Contains(t, out.String(), "| ALIAS NAME |")
		assert.Contains(t, out.String(), "| gs         | git status |")
		assert.Contains(t, out.String(), "| ll         | ls -l      |")
	})

	t.Run("no aliases", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg := &config.Config{AliasFile: "aliases.yaml", NoColor: true}

		err := runAliasesCmd(cfg, out, providerReturning(nil, nil))

		require.NoError(t, err)
		assert.Equal(t, "No predefined aliases found in aliases.yaml.\n", out.String())
	})

	t.Run("no file configured", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := runAliasesCmd(&config.Config{}, out, providerReturning(nil, nil))
		require.NoError(t, err)
		assert.Equal(t, "No predefined alias file configured.\n", out.String())
	})

	t.Run("provider error", func(t *testing.T) {
		cfg := &config.Config{AliasFile: "aliases.yaml"}
		err := runAliasesCmd(cfg, &bytes.Buffer{}, providerReturning(nil, errors.New("bad yaml")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not list predefined aliases")
	})
}
