package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/minish/internal/config"
	"github.com/AntonioJCosta/minish/internal/handlers/ui"
)

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand(cfg *config.Config, out io.Writer, newProvider ProviderFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "List the predefined aliases minish loads at startup.",
		Long: `Displays the aliases read from the predefined alias file
($HOME/.minish/aliases.yaml unless --aliases or $` + config.AliasFileEnv + ` says otherwise).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.ConfigureColor(out, cfg.NoColor)
			return runAliasesCmd(cfg, out, newProvider)
		},
	}
	return cmd
}

// runAliasesCmd contains the core logic for the 'aliases' command.
func runAliasesCmd(cfg *config.Config, out io.Writer, newProvider ProviderFactory) error {
	if cfg.AliasFile == "" {
		fmt.Fprintln(out, ui.InfoColor("No predefined alias file configured."))
		return nil
	}

	provider, err := newProvider(cfg.AliasFile)
	if err != nil {
		return fmt.Errorf("could not open predefined aliases: %w", err)
	}
	aliases, err := provider.GetPredefinedAliases()
	if err != nil {
		return fmt.Errorf("could not list predefined aliases: %w", err)
	}

	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No predefined aliases found in %s.", cfg.AliasFile)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Predefined aliases (%s):", cfg.AliasFile)))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias Name", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()
	return nil
}
