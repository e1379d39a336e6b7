package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/minish/internal/config"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/testutil"
)

func TestRootCommand(t *testing.T) {
	t.Setenv(config.AliasFileEnv, "/tmp/minish-test-aliases.yaml")

	var gotCfg *config.Config
	cleaned := false
	interp := &testutil.MockLineInterpreter{HandleLineFunc: stopOn("exit_shell"), PromptText: "$ "}
	factory := func(cfg *config.Config) (ports.LineInterpreter, func(), error) {
		gotCfg = cfg
		return interp, func() { cleaned = true }, nil
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	streams := Streams{In: strings.NewReader("ls\nexit_shell\n"), Out: stdout, Err: stderr}

	cmd := NewRootCommand("test", streams, factory, providerReturning(nil, nil))
	cmd.SetArgs([]string{"--max-line", "64", "--no-color"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"ls", "exit_shell"}, interp.Lines)
	assert.True(t, cleaned)
	require.NotNil(t, gotCfg)
	assert.Equal(t, 64, gotCfg.MaxLineLength)
	assert.True(t, gotCfg.NoColor)
	assert.Equal(t, "/tmp/minish-test-aliases.yaml", gotCfg.AliasFile)
	assert.Equal(t, "$ $ ", stdout.String())
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	called := false
	factory := func(*config.Config) (ports.LineInterpreter, func(), error) {
		called = true
		return nil, nil, nil
	}
	streams := Streams{In: strings.NewReader(""), Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}

	cmd := NewRootCommand("test", streams, factory, providerReturning(nil, nil))
	cmd.SetArgs([]string{"--max-line", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.False(t, IsReported(err))
	assert.False(t, called)
}

func TestRootCommand_FactoryError(t *testing.T) {
	factory := func(*config.Config) (ports.LineInterpreter, func(), error) {
		return nil, nil, errors.New("no signals")
	}
	streams := Streams{In: strings.NewReader(""), Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}

	cmd := NewRootCommand("test", streams, factory, providerReturning(nil, nil))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not start interpreter")
}

func TestRootCommand_EndOfInput(t *testing.T) {
	factory := func(*config.Config) (ports.LineInterpreter, func(), error) {
		return &testutil.MockLineInterpreter{}, func() {}, nil
	}
	stderr := &bytes.Buffer{}
	streams := Streams{In: strings.NewReader(""), Out: &bytes.Buffer{}, Err: stderr}

	cmd := NewRootCommand("test", streams, factory, providerReturning(nil, nil))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, "ERR\n", stderr.String())
}
