package config

import (
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Setenv(AliasFileEnv, "")
	t.Setenv("HOME", "/home/tester")

	cfg := Default()

	assert.Equal(t, filepath.Join("/home/tester", ".minish", "aliases.yaml"), cfg.AliasFile)
	assert.Equal(t, 1024, cfg.MaxLineLength)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultAliasFile_Env(t *testing.T) {
	t.Setenv(AliasFileEnv, "/etc/minish/aliases.yaml")
	assert.Equal(t, "/etc/minish/aliases.yaml", DefaultAliasFile())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{name: "minimal line length", cfg: Config{MaxLineLength: 2}},
		{name: "no alias file", cfg: Config{MaxLineLength: 80, AliasFile: ""}},
		{name: "line length too small", cfg: Config{MaxLineLength: 1}, wantField: "max_line"},
		{name: "zero line length", cfg: Config{}, wantField: "max_line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}
