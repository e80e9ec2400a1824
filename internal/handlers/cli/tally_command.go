package cli

import (
	"fmt"

	"github.com/AntonioJCosta/mostactive/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewTallyCommand creates the 'tally' subcommand.
func NewTallyCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Show how often every identifier occurs on the given day.",
		Long:  `Lists every identifier seen on the requested day with its count, in order of first appearance.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTallyCmd(cmd, args, deps)
		},
	}
	return cmd
}

func runTallyCmd(cmd *cobra.Command, _ []string, deps Dependencies) error {
	opts, err := resolveRunOptions(cmd, deps)
	if err != nil {
		return err
	}

	svc, err := newFrequencyService(opts, deps)
	if err != nil {
		return err
	}

	entries, err := svc.Tally(opts.date)
	if err != nil {
		return wrapRunError(opts, err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No identifiers found on %s (%s).", opts.date, opts.location)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Identifiers on %s (%s):", opts.date, opts.location)))
	renderTallyTable(out, entries)
	return nil
}
