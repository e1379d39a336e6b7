package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/minish/internal/config"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/AntonioJCosta/minish/internal/logutil"
)

// Streams are the standard streams the interpreter reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ShellFactory wires an interpreter for cfg. The returned cleanup stops
// anything the factory started and must be called once the session ends.
type ShellFactory func(cfg *config.Config) (interp ports.LineInterpreter, cleanup func(), err error)

// ProviderFactory opens the predefined alias source at path.
type ProviderFactory func(path string) (ports.PredefinedAliasProvider, error)

func NewRootCommand(
	version string,
	streams Streams,
	newShell ShellFactory,
	newProvider ProviderFactory,
) *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "minish",
		Short: "minish is a small line-oriented command interpreter.",
		Long: `minish reads one command per line, expands aliases, runs && and ||
chains, keeps background jobs and redirects the error stream with 2>.
Type exit_shell to leave.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cfg, streams, newShell)
		},
	}
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.AliasFile, "aliases", cfg.AliasFile, "predefined alias file (env "+config.AliasFileEnv+")")
	flags.StringVar(&cfg.LogFile, "log-file", "", "append debug logs to this file")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable coloured output")
	rootCmd.Flags().IntVar(&cfg.MaxLineLength, "max-line", config.DefaultMaxLineLength, "longest accepted input line in bytes")

	rootCmd.AddCommand(NewAliasesCommand(cfg, streams.Out, newProvider))

	return rootCmd
}

func runShell(cfg *config.Config, streams Streams, newShell ShellFactory) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	ui.ConfigureColor(streams.Out, cfg.NoColor)

	interp, cleanup, err := newShell(cfg)
	if err != nil {
		return fmt.Errorf("could not start interpreter: %w", err)
	}
	defer cleanup()

	return RunREPL(interp, streams, cfg.MaxLineLength)
}

func setupLogging(path string) (func(), error) {
	file, err := logutil.SetOutputFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	return func() {
		if file != nil {
			logutil.SetOutput(io.Discard)
			file.Close()
		}
	}, nil
}
