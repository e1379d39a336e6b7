package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/AntonioJCosta/minish/internal/adapters/oscommand"
	"github.com/AntonioJCosta/minish/internal/adapters/predefinedaliases"
	"github.com/AntonioJCosta/minish/internal/adapters/reaper"
	"github.com/AntonioJCosta/minish/internal/adapters/redirection"
	"github.com/AntonioJCosta/minish/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/minish/internal/config"
	"github.com/AntonioJCosta/minish/internal/core/domain/session"
	"github.com/AntonioJCosta/minish/internal/core/ports"
	"github.com/AntonioJCosta/minish/internal/core/services/aliastable"
	"github.com/AntonioJCosta/minish/internal/core/services/dispatcher"
	"github.com/AntonioJCosta/minish/internal/core/services/interpreter"
	"github.com/AntonioJCosta/minish/internal/core/services/jobtable"
	"github.com/AntonioJCosta/minish/internal/core/services/scriptfeeder"
	"github.com/AntonioJCosta/minish/internal/handlers/cli"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
	"github.com/AntonioJCosta/minish/internal/logutil"
)

// Version is set at build time
var Version = "dev"

var logger = logutil.GetLogger("[main] ")

func main() {
	fs := afero.NewOsFs()
	streams := cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	newProvider := func(path string) (ports.PredefinedAliasProvider, error) {
		return predefinedaliases.NewYAMLProvider(fs, path)
	}
	newShell := func(cfg *config.Config) (ports.LineInterpreter, func(), error) {
		return newInterpreter(cfg, fs, newProvider)
	}

	rootCmd := cli.NewRootCommand(Version, streams, newShell, newProvider)
	if err := rootCmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorColor("Error:"), err)
		}
		os.Exit(1)
	}
}

func newInterpreter(
	cfg *config.Config,
	fs afero.Fs,
	newProvider cli.ProviderFactory,
) (ports.LineInterpreter, func(), error) {
	tok := tokenizer.NewQuoteTokenizer()
	aliases := aliastable.NewService()
	jobs := jobtable.NewService()
	counters := session.NewCounters()

	if cfg.AliasFile != "" {
		provider, err := newProvider(cfg.AliasFile)
		if err != nil {
			return nil, nil, err
		}
		predefined, err := provider.GetPredefinedAliases()
		if err != nil {
			// The interpreter still works without them.
			fmt.Fprintf(os.Stderr, "%s %v\n", ui.WarningColor("Warning: predefined aliases not loaded:"), err)
		}
		for _, a := range aliastable.Preload(aliases, tok, predefined) {
			logger.Printf("predefined alias %s rejected: too many arguments", a.Name)
		}
	}

	childReaper := reaper.NewSigchldReaper(jobs, counters)
	childReaper.Start()

	disp := dispatcher.NewService(dispatcher.Deps{
		Tokenizer: tok,
		Aliases:   aliases,
		Jobs:      jobs,
		Launcher:  oscommand.NewOSProcessLauncher(),
		Reaper:    childReaper,
		Counters:  counters,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	})
	redirector := redirection.NewStderrRedirector()
	interp := interpreter.NewService(interpreter.Deps{
		Tokenizer:  tok,
		Aliases:    aliases,
		Redirector: redirector,
		Dispatcher: disp,
		Feeder:     scriptfeeder.NewService(fs, disp, counters),
		Counters:   counters,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	})

	cleanup := func() {
		childReaper.Stop()
		if err := redirector.Restore(); err != nil {
			logger.Printf("restore stderr: %v", err)
		}
	}
	return interp, cleanup, nil
}
