package predefinedaliases

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/minish/internal/core/domain/alias"
)

const aliasFile = "/home/user/.minish/aliases.yaml"

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider(afero.NewMemMapFs(), aliasFile)
	require.NoError(t, err)
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}

	_, err = NewYAMLProvider(afero.NewMemMapFs(), "")
	assert.Error(t, err)

	_, err = NewYAMLProvider(nil, aliasFile)
	assert.Error(t, err)
}

func TestYAMLProvider_GetPredefinedAliases(t *testing.T) {
	validAliasesYAML := `
- command: git status
  alias: gs
- command: ls -l
  alias: ll
`
	longName := strings.Repeat("n", 60)

	tests := []struct {
		name                string
		content             *string // nil means the file does not exist
		wantAliases         []alias.Alias
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "missing file",
			content:     nil,
			wantAliases: []alias.Alias{},
		},
		{
			name:        "empty file",
			content:     strPtr(""),
			wantAliases: []alias.Alias{},
		},
		{
			name:        "comments only",
			content:     strPtr("# nothing here\n"),
			wantAliases: []alias.Alias{},
		},
		{
			name:        "empty list",
			content:     strPtr("[]"),
			wantAliases: []alias.Alias{},
		},
		{
			name:    "valid aliases",
			content: strPtr(validAliasesYAML),
			wantAliases: []alias.Alias{
				{Name: "gs", Command: "git status"},
				{Name: "ll", Command: "ls -l"},
			},
		},
		{
			name:        "long name truncated",
			content:     strPtr("- command: pwd\n  alias: " + longName + "\n"),
			wantAliases: []alias.Alias{{Name: longName[:alias.MaxNameLength], Command: "pwd"}},
		},
		{
			name:                "unknown field",
			content:             strPtr("- alias: g\n  command: git\n  description: nope\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal predefined aliases",
		},
		{
			name:                "not a list",
			content:             strPtr("alias: g command: git"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal predefined aliases",
		},
		{
			name:                "missing command",
			content:             strPtr("- alias: g\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "predefined alias #1",
		},
		{
			name:                "missing name",
			content:             strPtr("- alias: g\n  command: git\n- command: ls\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "predefined alias #2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != nil {
				require.NoError(t, afero.WriteFile(fs, aliasFile, []byte(*tt.content), 0644))
			}
			provider, err := NewYAMLProvider(fs, aliasFile)
			require.NoError(t, err)

			aliases, err := provider.GetPredefinedAliases()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorMsgSnippet)
				assert.Nil(t, aliases)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAliases, aliases)
		})
	}
}

func strPtr(s string) *string { return &s }
